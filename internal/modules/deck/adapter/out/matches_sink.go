package out

import (
	"context"

	"eventdeck/internal/modules/deck/domain"
	deckout "eventdeck/internal/modules/deck/port/out"
	matchesdto "eventdeck/internal/modules/matches/dto"
	matchesin "eventdeck/internal/modules/matches/port/in"
)

// MatchesSink forwards interested outcomes to the matches module.
type MatchesSink struct {
	matches matchesin.Usecase
}

func NewMatchesSink(matches matchesin.Usecase) deckout.OutcomeSink {
	return &MatchesSink{matches: matches}
}

func (s *MatchesSink) Record(ctx context.Context, outcome domain.Outcome) (bool, error) {
	if outcome.Decision != domain.DecisionInterested {
		return false, nil
	}
	out, err := s.matches.Record(ctx, matchesdto.RecordInput{EventID: outcome.EventID, DecidedAt: outcome.At})
	if err != nil {
		return false, err
	}
	return out.Created, nil
}

func (s *MatchesSink) Retract(ctx context.Context, eventID string) error {
	_, err := s.matches.Retract(ctx, eventID)
	return err
}
