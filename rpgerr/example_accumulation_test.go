package rpgerr_test

import (
	"context"
	"fmt"

	"github.com/spetersoncode/pits-of-despair-sub006/rpgerr"
)

// Example_errorAccumulation demonstrates the magic of automatic context accumulation.
// Watch how the error captures the complete story without manual passing.
func Example_errorAccumulation() {
	// Simulate an attack that flows through multiple combat-core layers
	err := simulateCombatRound()

	// The error contains the ENTIRE journey
	meta := rpgerr.GetMeta(err)
	fmt.Printf("Error: %v\n", err)
	fmt.Printf("Turn: %v\n", meta["turn"])
	fmt.Printf("Attacker: %v\n", meta["attacker_id"])
	fmt.Printf("Attack: %v\n", meta["attack_id"])
	fmt.Printf("Distance: %v\n", meta["distance"])

	// Output:
	// Error: melee attack out of range
	// Turn: 3
	// Attacker: c-001
	// Attack: longsword
	// Distance: 7
}

func simulateCombatRound() error {
	// Scheduler adds turn context
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("turn", 3),
		rpgerr.Meta("phase", "action"))

	// Execute the acting combatant's turn
	return executeCombatantTurn(ctx, "c-001")
}

func executeCombatantTurn(ctx context.Context, attackerID string) error {
	// Turn resolution adds attacker context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attacker_id", attackerID),
		rpgerr.Meta("action", "attack"))

	// Attempt melee attack
	return attemptMeleeAttack(ctx, "c-009")
}

func attemptMeleeAttack(ctx context.Context, targetID string) error {
	// Attack resolution adds weapon and target
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("target_id", targetID),
		rpgerr.Meta("attack_id", "longsword"))

	// Check if in range
	return checkMeleeRange(ctx)
}

func checkMeleeRange(ctx context.Context) error {
	// Range check adds the Chebyshev distance calculation
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("distance", 7),
		rpgerr.Meta("attack_range", 1))

	// Too far! But the error will contain the whole story
	return rpgerr.OutOfRangeCtx(ctx, "melee attack")
}

// Example_willpowerExhaustion shows how resource failures accumulate context
// through the effect pipeline's step executor.
func Example_willpowerExhaustion() {
	ctx := context.Background()

	// Effect pipeline level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("caster_id", "c-001"),
		rpgerr.Meta("attack_id", "smite")) // which ability is being invoked

	// Step definition level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("step", "modify_willpower"),
		rpgerr.Meta("cost", 3))

	// Pool check level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("current_willpower", 1),
		rpgerr.Meta("max_willpower", 10))

	// Create error with full journey
	err := rpgerr.ResourceExhaustedCtx(ctx, "willpower")

	meta := rpgerr.GetMeta(err)

	fmt.Printf("Cannot apply %v: %v\n", meta["attack_id"], err)
	fmt.Printf("Caster %v has %v/%v willpower, needs %v\n",
		meta["caster_id"], meta["current_willpower"], meta["max_willpower"], meta["cost"])

	// Output:
	// Cannot apply smite: insufficient willpower
	// Caster c-001 has 1/10 willpower, needs 3
}

// Example_savingThrowChain demonstrates how an attack-vs-saving-throw check
// accumulates context through validation, rolling, and resolution.
func Example_savingThrowChain() {
	ctx := context.Background()

	// Step context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attack_id", "hold_fast"),
		rpgerr.Meta("save_stat", "endurance"),
		rpgerr.Meta("save_dc", 15),
		rpgerr.Meta("caster_id", "c-001"))

	// Target context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("target_id", "c-009"),
		rpgerr.Meta("endurance_modifier", 0))

	// Roll context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("roll", 12),
		rpgerr.Meta("total_save", 12)) // 12 + 0 modifier

	// Failed save - but look at all the context we have!
	err := rpgerr.NewCtx(ctx, rpgerr.CodeBlocked, "failed endurance save vs hold_fast")

	meta := rpgerr.GetMeta(err)
	fmt.Printf("Attack: %v (DC %v)\n", meta["attack_id"], meta["save_dc"])
	fmt.Printf("Target rolled: %v (total: %v)\n", meta["roll"], meta["total_save"])
	fmt.Printf("Result: Failed (needed %v, got %v)\n", meta["save_dc"], meta["total_save"])

	// Output:
	// Attack: hold_fast (DC 15)
	// Target rolled: 12 (total: 12)
	// Result: Failed (needed 15, got 12)
}

// Example_chainDamageFalloff shows deep nesting where each chain-damage hop
// adds its own context, creating a complete picture of how a hop's damage
// was derived and clamped.
func Example_chainDamageFalloff() {
	// Attack hits and enters chain-damage resolution
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("caster_id", "c-001"),
		rpgerr.Meta("attack_id", "lightning_chain"))

	// Base damage calculation for this hop
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("hop", 2),
		rpgerr.Meta("damage_roll", 8),
		rpgerr.Meta("falloff", 0.1),
		rpgerr.Meta("raw_damage", 0)) // 8 * 0.1 truncates to 0 before the floor clamp

	// Target defenses
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("target_id", "c-009"),
		rpgerr.Meta("damage_type", "lightning"),
		rpgerr.Meta("target_immunities", []string{"poison"}),
		rpgerr.Meta("target_resistances", []string{"lightning"}))

	// Floor clamp applied
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("floor_clamped", true),
		rpgerr.Meta("final_damage", 1)) // floored to the minimum of 1

	// Create an informational "error" showing the reduction
	err := rpgerr.NewCtx(ctx, rpgerr.CodeBlocked,
		"hop damage floor-clamped after falloff")

	// The complete hop story is captured
	meta := rpgerr.GetMeta(err)
	fmt.Printf("Hop %v: %v rolled %v raw damage (falloff %v)\n",
		meta["hop"], meta["attack_id"], meta["damage_roll"], meta["falloff"])
	fmt.Printf("After floor clamp: %v damage\n", meta["final_damage"])

	// Output:
	// Hop 2: lightning_chain rolled 8 raw damage (falloff 0.1)
	// After floor clamp: 1 damage
}
