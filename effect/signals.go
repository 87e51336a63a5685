// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import "github.com/spetersoncode/pits-of-despair-sub006/external"

func attackHitSignal(ctx *Context) external.Signal {
	return external.Signal{
		Kind:       external.SignalAttackHit,
		AttackerID: ctx.Caster.ID,
		TargetID:   ctx.Target.ID,
		SourceLabel: ctx.SkillName,
	}
}

func attackBlockedSignal(ctx *Context) external.Signal {
	return external.Signal{
		Kind:       external.SignalAttackBlocked,
		AttackerID: ctx.Caster.ID,
		TargetID:   ctx.Target.ID,
		SourceLabel: ctx.SkillName,
	}
}

func skillDamageSignal(ctx *Context, targetID string, amount int) external.Signal {
	attackerID := ""
	if ctx.Caster != nil {
		attackerID = ctx.Caster.ID
	}
	return external.Signal{
		Kind:        external.SignalSkillDamageDealt,
		AttackerID:  attackerID,
		TargetID:    targetID,
		Amount:      amount,
		SourceLabel: ctx.SkillName,
	}
}
