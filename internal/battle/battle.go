// Package battle orchestrates all-vs-all battle royale encounters.
package battle

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battleband/internal/battlelog"
	"github.com/samdwyer/battleband/internal/combat"
	"github.com/samdwyer/battleband/internal/entity"
	"github.com/samdwyer/battleband/internal/logging"
	"github.com/samdwyer/battleband/internal/telemetry"
)

// Status represents the lifecycle state of a battle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// ErrAlreadyRun is returned when Run is invoked more than once on a battle.
var ErrAlreadyRun = errors.New("battle already run")

// Outcome describes how a battle concluded.
type Outcome struct {
	Winner *entity.Character // nil on a draw
	Rounds int
}

// Battle is a transient all-vs-all encounter. Combatants fight in rounds
// until at most one remains alive; insertion order determines turn order.
type Battle struct {
	ID uuid.UUID

	status       Status
	participants []*entity.Character // original roster, in insertion order
	alive        []*entity.Character // live roster, swept at the end of each round
	round        int
	resolver     *combat.Resolver
	log          *battlelog.Sink
}

// New creates an empty battle using the given resolver and log sink.
func New(resolver *combat.Resolver, log *battlelog.Sink) *Battle {
	return &Battle{
		ID:       uuid.New(),
		status:   StatusPending,
		resolver: resolver,
		log:      log,
	}
}

// Add registers a combatant. Insertion order determines turn order.
func (b *Battle) Add(c *entity.Character) {
	b.participants = append(b.participants, c)
	b.alive = append(b.alive, c)
}

// Status returns the battle lifecycle state.
func (b *Battle) Status() Status { return b.status }

// Round returns the number of completed rounds.
func (b *Battle) Round() int { return b.round }

// AliveCount returns the number of combatants still on the live roster.
func (b *Battle) AliveCount() int { return len(b.alive) }

// Participants returns the original roster in insertion order.
func (b *Battle) Participants() []*entity.Character { return b.participants }

// Run executes rounds until at most one combatant remains, then announces the
// outcome and dodge statistics. A battle runs exactly once.
func (b *Battle) Run(ctx context.Context) (Outcome, error) {
	if b.status != StatusPending {
		return Outcome{}, ErrAlreadyRun
	}
	b.status = StatusRunning

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.run")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.Int("battle.participants", len(b.participants)),
	)
	defer span.End()

	logging.Log.WithFields(logrus.Fields{
		"battle_id":    b.ID,
		"participants": len(b.participants),
	}).Info("Battle started.")

	b.log.Logf("⚑ Battle begins with %d combatants!", len(b.participants))

	for len(b.alive) > 1 {
		b.runRound(ctx)
	}

	outcome := b.conclude()

	span.SetAttributes(attribute.Int("battle.rounds", outcome.Rounds))
	if outcome.Winner != nil {
		span.SetAttributes(attribute.String("battle.winner", outcome.Winner.GetName()))
	}
	return outcome, nil
}

// runRound executes one full pass where every living combatant attacks every
// other combatant still living at the moment of each attack, then sweeps the
// fallen from the live roster.
func (b *Battle) runRound(ctx context.Context) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.round")
	span.SetAttributes(
		attribute.Int("round", b.round+1),
		attribute.Int("alive", len(b.alive)),
	)
	defer span.End()

	b.log.Logf("— Round %d —", b.round+1)

	// The roster only shrinks after the pass, so iterating it directly is a
	// stable snapshot. The resolver skips pairs where either side has died
	// mid-round.
	for i := range b.alive {
		for j := range b.alive {
			if i == j {
				continue
			}
			b.resolver.Attack(b.alive[i], b.alive[j])
		}
	}

	// Sweep the fallen in reverse order so index removal stays valid.
	for i := len(b.alive) - 1; i >= 0; i-- {
		if !b.alive[i].IsAlive() {
			b.log.Logf("✝ %s has been eliminated in round %d", b.alive[i].GetName(), b.round+1)
			b.alive = append(b.alive[:i], b.alive[i+1:]...)
		}
	}

	b.round++

	logging.Log.WithFields(logrus.Fields{
		"battle_id": b.ID,
		"round":     b.round,
		"alive":     len(b.alive),
	}).Debug("Round completed.")
}

// conclude announces the winner or draw, reports statistics and finalizes the
// battle state.
func (b *Battle) conclude() Outcome {
	outcome := Outcome{Rounds: b.round}

	if len(b.alive) == 1 {
		winner := b.alive[0]
		outcome.Winner = winner
		b.log.Logf("♛ %s wins the battle with %d/%d HP after %d rounds!",
			winner.GetName(), winner.DisplayHP(), winner.GetMaxHP(), b.round)
	} else {
		b.log.Log("⚐ The battle ends in a draw: no combatant remains standing.")
	}

	b.reportStats()
	b.status = StatusCompleted

	fields := logrus.Fields{
		"battle_id": b.ID,
		"rounds":    outcome.Rounds,
	}
	if outcome.Winner != nil {
		fields["winner"] = outcome.Winner.GetName()
	}
	logging.Log.WithFields(fields).Info("Battle completed.")

	return outcome
}
