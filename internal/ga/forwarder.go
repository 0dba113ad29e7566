package ga

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/and161185/line-insight/internal/errs"
	"github.com/and161185/line-insight/model"
	"go.uber.org/zap"
)

// Result summarizes one Send call.
type Result struct {
	Payloads     int
	Chunks       int
	FailedChunks int
}

// Forwarder posts payload batches to the analytics batch endpoint.
type Forwarder struct {
	httpClient *http.Client
	endpoint   string
	batchLimit int
	logger     *zap.SugaredLogger
	newID      func() string
}

// NewForwarder creates a Forwarder posting at most batchLimit payloads per request.
func NewForwarder(hc *http.Client, endpoint string, batchLimit int, logger *zap.SugaredLogger) *Forwarder {
	return &Forwarder{
		httpClient: hc,
		endpoint:   endpoint,
		batchLimit: batchLimit,
		logger:     logger,
		newID:      NewClientID,
	}
}

// Send formats the bot's hits and posts every chunk concurrently.
// A failed chunk is logged with its content and does not affect the others.
func (f *Forwarder) Send(ctx context.Context, bot model.Bot, hits []model.Hit) Result {
	payloads := BuildPayloads(bot, hits, f.newID())
	chunks := Chunk(payloads, f.batchLimit)

	failed := make([]bool, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.post(ctx, EncodeBatch(chunk)); err != nil {
				failed[i] = true
				f.logger.Errorw("failed to send batch",
					"bot", bot.Name, "chunk", i, "err", err, "payloads", dumpChunk(chunk))
			}
		}()
	}
	wg.Wait()

	res := Result{Payloads: len(payloads), Chunks: len(chunks)}
	for _, fl := range failed {
		if fl {
			res.FailedChunks++
		}
	}
	return res
}

func (f *Forwarder) post(ctx context.Context, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", errs.ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func dumpChunk(chunk []model.Payload) string {
	b, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Sprintf("%v", chunk)
	}
	return string(b)
}
