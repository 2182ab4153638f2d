// SPDX-License-Identifier: MIT

package storage

// NewSlotKeyGeneratorAt exposes a generator positioned anywhere in the key space.
func NewSlotKeyGeneratorAt[K Slotted](floor, index, generation uint32) *SlotKeyGenerator[K] {
	return &SlotKeyGenerator[K]{floor: floor, index: index, generation: generation}
}

// ForceSlotGeneration overwrites the generation of an occupied slot.
func ForceSlotGeneration[K Slotted, E any](m *SlotMap[K, E], index, generation uint32) {
	m.slots[index].generation = generation
}
