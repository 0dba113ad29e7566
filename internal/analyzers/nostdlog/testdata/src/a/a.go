package a

import (
	"fmt"
	"log"
)

func report(err error) {
	log.Printf("failed: %v", err) // want `use the zap logger instead of log.Printf`
	log.Println("done")           // want `use the zap logger instead of log.Println`
	fmt.Println("not a logger")
}

func custom(l *log.Logger) {
	l.Print("method calls on a logger value are allowed")
}
