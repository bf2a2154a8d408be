package main

import (
	"fmt"

	"github.com/lox/rpsls/internal/bot"
)

type BotsCmd struct{}

func (c *BotsCmd) Run() error {
	for _, name := range bot.Names() {
		fmt.Printf("  %-10s %s\n", name, bot.Describe(name))
	}
	return nil
}
