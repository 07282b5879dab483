package app

import (
	"context"

	"github.com/dkeye/Debate/internal/core"
	"github.com/rs/zerolog/log"
)

// CheckFact asks the oracle about a claim and answers the requester only.
// Oracle failures turn into FactCheckFallback.
func (o *Orchestrator) CheckFact(ctx context.Context, sid core.SessionID, req FactCheckRequest) error {
	if err := check(req); err != nil {
		return err
	}
	result := FactCheckFallback
	if o.Oracle != nil {
		answer, err := o.Oracle.Verify(ctx, req.Text)
		if err != nil {
			log.Error().Err(err).Str("module", "app.orch").Str("sid", string(sid)).Msg("fact check failed")
		} else {
			result = answer
		}
	}
	o.SendTo(sid, EventFactCheckResult, FactCheckPayload{
		Original:  req.Text,
		Result:    result,
		Timestamp: now().Format(timeLayout),
	})
	return nil
}
