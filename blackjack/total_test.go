package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(strs ...string) []Card {
	out := make([]Card, len(strs))
	for i, s := range strs {
		card, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		out[i] = card
	}
	return out
}

func TestTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		total int
	}{
		{"hard total", []string{"Th", "7s"}, 17},
		{"natural", []string{"Ah", "Kh"}, 21},
		{"soft seventeen", []string{"Ah", "6h"}, 17},
		{"ace demoted", []string{"Ah", "6h", "9s"}, 16},
		{"two aces", []string{"Ah", "As"}, 12},
		{"two aces and nine", []string{"Ah", "As", "9s"}, 21},
		{"all four aces", []string{"Ah", "As", "Ad", "Ac"}, 14},
		{"bust", []string{"Th", "6h", "8s"}, 24},
		{"bust with demoted ace", []string{"Ah", "Th", "6h", "8s"}, 25},
		{"empty hand", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.total, Total(cards(tt.cards...)))
		})
	}
}

func TestIsSoft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		soft  bool
	}{
		{"no ace", []string{"Th", "7s"}, false},
		{"ace counting eleven", []string{"Ah", "6h"}, true},
		{"ace demoted to one", []string{"Ah", "6h", "9s"}, false},
		{"one of two aces demoted", []string{"Ah", "As"}, true},
		{"natural is soft", []string{"Ah", "Kh"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.soft, IsSoft(cards(tt.cards...)))
		})
	}
}
