package main

import (
	"context"
	"log"

	"github.com/MrSnakeDoc/sharelink/internal/commands"
)

func main() {
	if err := commands.New().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("❌ sharelink: %v", err)
	}
}
