package command

// Is reports whether name is one of the command's variations.
func Is(name string, c *Command) bool {
	if name == c.Command {
		return true
	}
	for _, alias := range c.Aliases {
		if name == alias {
			return true
		}
	}
	return false
}

// Find returns the first command answering to name, or nil.
func Find(commands []*Command, name string) *Command {
	for _, c := range commands {
		if Is(name, c) {
			return c
		}
	}
	return nil
}
