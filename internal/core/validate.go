package core

import "fmt"

const (
	maxDepth          = 100
	maxAttributeBytes = 256
	maxValueBytes     = 65536
)

// Validation runs before any network call; invalid input fails fast
// and never reaches the wire.

func validateNodeID(id int) error {
	if id < 0 {
		return fmt.Errorf("node id must be a non-negative integer, got %d", id)
	}
	return nil
}

func validateDepth(depth int) error {
	if depth < 0 || depth > maxDepth {
		return fmt.Errorf("depth must be between 0 and %d, got %d", maxDepth, depth)
	}
	return nil
}

func validateSignal(entityID int, attribute, value string) error {
	if entityID < 0 {
		return fmt.Errorf("entity id must be a non-negative integer, got %d", entityID)
	}
	if attribute == "" {
		return fmt.Errorf("attribute must be a non-empty string")
	}
	if n := len(attribute); n > maxAttributeBytes {
		return fmt.Errorf("attribute exceeds %d bytes limit (%d bytes)", maxAttributeBytes, n)
	}
	if value == "" {
		return fmt.Errorf("value must be a non-empty string")
	}
	if n := len(value); n > maxValueBytes {
		return fmt.Errorf("value exceeds %d bytes limit (%d bytes)", maxValueBytes, n)
	}
	return nil
}
