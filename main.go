package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server"
	"github.com/sanity-io/litter"
)

var dumper = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ServerPort != "" {
		s := server.NewServer(cfg)
		if err := s.Start(cfg.ServerPort); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed()))
	store := events.NewInMemoryEventStore()

	state, err := game.PlayRound(store, cfg.Rules(), rng, cfg.DealerName, cfg.PlayerName)
	if err != nil {
		log.Fatalf("Round aborted: %v", err)
	}

	printParticipant(state.Dealer)
	printParticipant(state.Player)
	fmt.Print(state.Summary())
}

func printParticipant(p *domain.Participant) {
	fmt.Println(dumper.Sdump(p))
	fmt.Println(p.HandValue())
}
