package main

import (
	"context"
	"log"

	"github.com/Apurer/go-users-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("users-api: %v", err)
	}
}
