// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"fmt"

	"github.com/spetersoncode/pits-of-despair-sub006/message"
	"github.com/spetersoncode/pits-of-despair-sub006/rpgerr"
)

// OutcomeKind is the tagged variant of a step's result, replacing
// exceptions/nullable-results for a missing component.
type OutcomeKind int

const (
	// OutcomeOk: the step applied normally.
	OutcomeOk OutcomeKind = iota
	// OutcomePreconditionFailed: a game rule prevented the step (no
	// charges, no melee weapon). State is unchanged; a user-facing
	// message should already be logged by the step.
	OutcomePreconditionFailed
	// OutcomeDiagnostic: the step could not apply (missing component, no
	// AoE position). Logged; the pipeline continues.
	OutcomeDiagnostic
)

// Outcome is a step's result.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Ok is the zero-value successful outcome.
func Ok() Outcome { return Outcome{Kind: OutcomeOk} }

// PreconditionFailed builds an OutcomePreconditionFailed outcome.
func PreconditionFailed(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomePreconditionFailed, Message: fmt.Sprintf(format, args...)}
}

// Diagnostic builds an OutcomeDiagnostic outcome.
func Diagnostic(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomeDiagnostic, Message: fmt.Sprintf(format, args...)}
}

// Step is one operation inside a pipeline. Implementations mutate state
// and may mutate external systems via ctx; they must never panic on a
// missing component or target — that is what Outcome is for.
type Step interface {
	Execute(ctx *Context, state *State, messages *message.Collector) Outcome
}

// Pipeline is an ordered list of steps sharing one State across a single
// execution. The driver honours state.Continue: the first
// step that clears it terminates the pipeline early.
type Pipeline struct {
	Steps []Step
}

// Run executes every step in order against ctx/state/messages, stopping
// early if a step sets state.Continue to false.
func (p *Pipeline) Run(ctx *Context, state *State, messages *message.Collector) {
	for _, step := range p.Steps {
		step.Execute(ctx, state, messages)
		if !state.Continue {
			return
		}
	}
}

// RunSub executes steps as an independently-scoped sub-pipeline: it uses
// a fresh State (so the sub-pipeline's save/attack rolls never leak into
// the caller's State) but the same shared MessageCollector, with its
// current-entity cursor temporarily swapped to subTargetID and restored
// on every exit path. It returns the sub-pipeline's own State in case the
// caller wants to inspect it (e.g. DamageDealt for a vampiric follow-up).
func RunSub(steps []Step, ctx *Context, messages *message.Collector, subTargetID string) *State {
	previous := messages.SetCurrentEntity(subTargetID)
	defer messages.SetCurrentEntity(previous)

	subState := NewState()
	sub := &Pipeline{Steps: steps}
	sub.Run(ctx, subState, messages)
	return subState
}

// Registry is a static table of step constructors keyed by a
// StepDefinition's Type string (replace reflection-based
// dictionary walking with a static registry; unknown types are
// validation errors at load time).
type Registry struct {
	constructors map[string]func(StepDefinition) (Step, error)
}

// NewRegistry returns a Registry pre-populated with every built-in step
// type.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]func(StepDefinition) (Step, error))}
	r.register(TypeSaveCheck, buildSaveCheck)
	r.register(TypeAttackRoll, buildAttackRoll)
	r.register(TypeDamage, buildDamage)
	r.register(TypeWeaponDamage, buildWeaponDamage)
	r.register(TypeHeal, buildHeal)
	r.register(TypeHealCaster, buildHealCaster)
	r.register(TypeApplyCondition, buildApplyCondition)
	r.register(TypeApplyBrand, buildApplyBrand)
	r.register(TypeApplyPrepare, buildApplyPrepare)
	r.register(TypeKnockback, buildKnockback)
	r.register(TypeBlink, buildBlink)
	r.register(TypeTeleport, buildTeleport)
	r.register(TypeMoveTiles, buildMoveTiles)
	r.register(TypeSpawnHazard, buildSpawnHazard)
	r.register(TypeMagicMapping, buildMagicMapping)
	r.register(TypeChainDamage, buildChainDamage)
	r.register(TypeClone, buildClone)
	r.register(TypeCharm, buildCharm)
	r.register(TypeModifyWillpower, buildModifyWillpower)
	return r
}

func (r *Registry) register(stepType string, ctor func(StepDefinition) (Step, error)) {
	r.constructors[stepType] = ctor
}

// Build constructs a Step from def, looking up def.Type in the registry.
// An unregistered type is a validation error — a programmer/data-file
// mistake caught at load time, not at execution time.
func (r *Registry) Build(def StepDefinition) (Step, error) {
	ctor, ok := r.constructors[def.Type]
	if !ok {
		return nil, rpgerr.Validationf("effect: unknown step type %q", def.Type)
	}
	return ctor(def)
}

// BuildPipeline builds every definition in defs into a Pipeline, in
// order.
func (r *Registry) BuildPipeline(defs []StepDefinition) (*Pipeline, error) {
	steps := make([]Step, 0, len(defs))
	for _, def := range defs {
		step, err := r.Build(def)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return &Pipeline{Steps: steps}, nil
}
