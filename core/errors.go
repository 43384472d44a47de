package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a symbol or pin missing from the snapshot.
// PinNumber is empty when the symbol itself is missing.
type NotFoundError struct {
	SymbolID  string
	PinNumber string
}

func (e *NotFoundError) Error() string {
	if e.PinNumber == "" {
		return fmt.Sprintf("symbol %s not found", e.SymbolID)
	}
	return fmt.Sprintf("pin %s not found in symbol %s", e.PinNumber, e.SymbolID)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LookupPin finds a pin by symbol id and pin number.
func LookupPin(symbols []Symbol, symbolID, pinNumber string) (Pin, Symbol, error) {
	for _, sym := range symbols {
		if sym.ID != symbolID {
			continue
		}
		pin, ok := sym.FindPin(pinNumber)
		if !ok {
			return Pin{}, sym, &NotFoundError{SymbolID: symbolID, PinNumber: pinNumber}
		}
		pin.OwnerRef = sym.Reference
		return pin, sym, nil
	}
	return Pin{}, Symbol{}, &NotFoundError{SymbolID: symbolID}
}
