package http

import (
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/pkg/journalsdk"
)

func accountResponse(a domain.Account, purgeDate time.Time) journalsdk.AccountResponse {
	resp := journalsdk.AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Admin:     a.Admin,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.Deleted {
		resp.PendingDeletion = true
		resp.PurgeDate = purgeDate.Format(time.RFC3339)
	}
	return resp
}

func tagResponse(t domain.Tag) journalsdk.TagResponse {
	return journalsdk.TagResponse{
		ID:     t.ID,
		Name:   t.Name,
		Global: t.Global(),
	}
}

func querentResponse(q domain.Querent) journalsdk.QuerentResponse {
	return journalsdk.QuerentResponse{
		ID:          q.ID,
		Name:        q.Name,
		Description: q.Description,
		Global:      q.Global(),
	}
}

func deckResponse(d domain.Deck) journalsdk.DeckResponse {
	return journalsdk.DeckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CardCount:   d.CardCount,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}

func spreadResponse(s domain.Spread) journalsdk.SpreadResponse {
	return journalsdk.SpreadResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Positions:   s.Positions,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func readingResponse(rd domain.Reading, tags []domain.Tag) journalsdk.ReadingResponse {
	resp := journalsdk.ReadingResponse{
		ID:             rd.ID,
		Title:          rd.Title,
		Question:       rd.Question,
		Interpretation: rd.Interpretation,
		QuerentID:      rd.QuerentID,
		DeckID:         rd.DeckID,
		SpreadID:       rd.SpreadID,
		ReadAt:         rd.ReadAt.Format(time.RFC3339),
		CreatedAt:      rd.CreatedAt.Format(time.RFC3339),
	}
	for _, c := range rd.Cards {
		resp.Cards = append(resp.Cards, journalsdk.CardDraw{
			Position: c.Position,
			Card:     c.Card,
			Reversed: c.Reversed,
		})
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, tagResponse(t))
	}
	return resp
}
