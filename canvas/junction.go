package canvas

// CharacterMerger decides what to show when two line characters land on the
// same cell.
type CharacterMerger struct {
	mergeMap map[mergePair]rune
}

type mergePair struct {
	existing rune
	new      rune
}

// NewCharacterMerger creates a merger with the box-drawing merge rules.
func NewCharacterMerger() *CharacterMerger {
	m := &CharacterMerger{
		mergeMap: make(map[mergePair]rune),
	}
	m.initializeMergeRules()
	return m
}

// Merge combines two characters. Unknown pairs keep the existing character.
func (m *CharacterMerger) Merge(existing, new rune) rune {
	if existing == ' ' || existing == '\x00' {
		return new
	}
	if existing == new {
		return existing
	}
	if merged, ok := m.mergeMap[mergePair{existing, new}]; ok {
		return merged
	}
	if merged, ok := m.mergeMap[mergePair{new, existing}]; ok {
		return merged
	}
	return existing
}

func (m *CharacterMerger) initializeMergeRules() {
	m.mergeMap[mergePair{'─', '│'}] = '┼'

	// Corner + line = T-junction
	m.mergeMap[mergePair{'┌', '─'}] = '┬'
	m.mergeMap[mergePair{'┌', '│'}] = '├'
	m.mergeMap[mergePair{'┐', '─'}] = '┬'
	m.mergeMap[mergePair{'┐', '│'}] = '┤'
	m.mergeMap[mergePair{'└', '─'}] = '┴'
	m.mergeMap[mergePair{'└', '│'}] = '├'
	m.mergeMap[mergePair{'┘', '─'}] = '┴'
	m.mergeMap[mergePair{'┘', '│'}] = '┤'

	// A perpendicular line through a T makes a cross.
	m.mergeMap[mergePair{'┬', '│'}] = '┼'
	m.mergeMap[mergePair{'┴', '│'}] = '┼'
	m.mergeMap[mergePair{'├', '─'}] = '┼'
	m.mergeMap[mergePair{'┤', '─'}] = '┼'

	// Adjacent boxes sharing an edge.
	m.mergeMap[mergePair{'┌', '┐'}] = '┬'
	m.mergeMap[mergePair{'└', '┘'}] = '┴'
	m.mergeMap[mergePair{'┌', '└'}] = '├'
	m.mergeMap[mergePair{'┐', '┘'}] = '┤'
	m.mergeMap[mergePair{'┌', '┘'}] = '┼'
	m.mergeMap[mergePair{'┐', '└'}] = '┼'

	// ASCII fallbacks
	m.mergeMap[mergePair{'-', '|'}] = '+'
	m.mergeMap[mergePair{'+', '-'}] = '+'
	m.mergeMap[mergePair{'+', '|'}] = '+'
}
