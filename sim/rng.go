package sim

import (
	"hash/fnv"
	"math/rand"
)

// GenerationKey identifies a reproducible synthetic workload.
// Two generations with the same key and identical configuration produce
// identical processes.
type GenerationKey int64

// NewGenerationKey creates a GenerationKey from a seed value.
func NewGenerationKey(seed int64) GenerationKey {
	return GenerationKey(seed)
}

const (
	// SubsystemArrivals draws inter-arrival gaps. Uses the master seed directly.
	SubsystemArrivals = "arrivals"

	// SubsystemService draws service demands.
	SubsystemService = "service"

	// SubsystemPriority draws base priorities.
	SubsystemPriority = "priority"
)

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem,
// so changing one distribution does not shift the samples of another.
//
// Derivation formula:
//   - For SubsystemArrivals: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        GenerationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a GenerationKey.
func NewPartitionedRNG(key GenerationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key)
	if name != SubsystemArrivals {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the GenerationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() GenerationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
