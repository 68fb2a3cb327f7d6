package main

import (
	"context"

	log "github.com/sirupsen/logrus"
)

func main() {
	err := GetRootCmd().ExecuteContext(context.Background())
	if err != nil {
		log.Fatalf("ecarith: %s", err.Error())
	}
}
