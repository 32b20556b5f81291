package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds          = errors.New("cell does not exist")
	ErrPlacementExhausted   = errors.New("ship placement exhausted")
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrNoTorpedoes          = errors.New("no torpedoes available")
	ErrModesLocked          = errors.New("game modes already set")
	ErrGameFinished         = errors.New("game is already finished")
	ErrGameNotExists        = errors.New("game does not exist")
	ErrInputClosed          = errors.New("input closed")
)

func ErrCellOutOfBounds(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBounds, row, col)
}

func ErrShipsNotPlaced(requested, placed int) error {
	return fmt.Errorf("%w\trequested: %d\tplaced: %d", ErrPlacementExhausted, requested, placed)
}

func ErrGridDimensions(rows, cols int) error {
	return fmt.Errorf("%w: rows and columns must be in 1..10\trows: %d\tcols: %d", ErrInvalidConfiguration, rows, cols)
}

func ErrNegativeShipCount(shipName string, count int) error {
	return fmt.Errorf("%w: number of %s must be 0 or above\tgot: %d", ErrInvalidConfiguration, shipName, count)
}

func ErrZeroShips() error {
	return fmt.Errorf("%w: the number of ships is 0", ErrInvalidConfiguration)
}

func ErrTorpedoCount(torpedoes, ships int) error {
	return fmt.Errorf("%w: torpedoes must be in 1..%d\tgot: %d", ErrInvalidConfiguration, ships, torpedoes)
}

func ErrUnknownShipLength(length int) error {
	return fmt.Errorf("%w: no ship has length %d", ErrInvalidConfiguration, length)
}

func ErrTorpedoUnavailable(torpedoMode bool) error {
	if !torpedoMode {
		return fmt.Errorf("%w: torpedo mode is disabled", ErrNoTorpedoes)
	}
	return fmt.Errorf("%w: all torpedoes are used", ErrNoTorpedoes)
}

func ErrModesAlreadySet(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrModesLocked, gameUuid)
}

func ErrGameIsFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrGameNotFound(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrTooManyGames(maxGames int) error {
	return fmt.Errorf("%w: at most %d games can be active", ErrInvalidConfiguration, maxGames)
}

func ErrInputEnded(prompt string) error {
	return fmt.Errorf("%w while waiting for: %q", ErrInputClosed, prompt)
}
