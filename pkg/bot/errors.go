package bot

import "fmt"

// A ValidationError rejects a whole registration batch: a malformed
// definition or a name/alias collision. Name is the offending string; Command
// is set when the string came from an alias and names the command it aliases.
type ValidationError struct {
	Name    string
	Command string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("invalid registration: %s (alias of %q): %s", e.Name, e.Command, e.Reason)
	}
	return fmt.Sprintf("invalid registration: %s: %s", e.Name, e.Reason)
}

// A ConfigurationError rejects a settings mutation; the stored settings are
// left untouched.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Setting, e.Reason)
}
