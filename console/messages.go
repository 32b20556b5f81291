package console

const (
	OptionStartGame int = iota + 1
	OptionQuit
)

const (
	OptionYes int = iota + 1
	OptionNo
)

const (
	msgWelcome          = "Welcome to Battleships!"
	msgIncorrectInput   = "Incorrect input. Try again."
	msgBye              = "Bye!"
	msgUnableToArrange  = "The System was unable to arrange all the ships. Please try again or you can quit the game."
	msgZeroShips        = "The number of ships is 0. Please try again and enter at least one ship."
	msgMiss             = "Miss!"
	msgHit              = "Hit!"
	msgAlreadyHit       = "The cell was already hit!"
	msgSunk             = "You have sunk the %s!"
	msgCellDoesNotExist = "The cell does not exist. Try again."
	msgWon              = "Congrats! You won the game with %d shots"
)

const (
	promptMenu = "Choose an option by only entering 1 or 2: \n" +
		"1.Start the game.\n" +
		"2.Quit the game."
	promptGridDimension = "Input the positive number of %s. It has to be less than 11: "
	promptShipCount     = "Enter the number of %ss. The number of this type of ship should be 0 or above: "
	promptRecoveryMode  = "Do you wish to enable recovery mode?\n" +
		"1. Yes.\n" +
		"2. No."
	promptTorpedoMode = "Do you wish to enable torpedo mode?\n" +
		"1. Yes.\n" +
		"2. No."
	promptTorpedoCount = "Enter the number of torpedoes. It cannot be less than 1 and greater than the number of all ships"
	promptUseTorpedo   = "Do you want to use torpedo? Enter only 1 or 2:\n" +
		"1. Use torpedo.\n" +
		"2. Do not use torpedo."
	promptFiringCell = "Input the positive number of %s: "
)

func isOption(value int) bool {
	return value == 1 || value == 2
}

func isNonNegative(value int) bool {
	return value >= 0
}

func inRange(lo, hi int) func(int) bool {
	return func(value int) bool {
		return value >= lo && value <= hi
	}
}
