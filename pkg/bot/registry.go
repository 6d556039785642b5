package bot

import (
	"sort"
	"strings"

	"github.com/heraldbot/herald/pkg/bot/command"
)

// RegistrationResult counts the outcome of one registration batch.
type RegistrationResult struct {
	Registered int
	Disabled   int
}

// registry holds the living set of commands and tasks. Commands are kept
// sorted by descending primary-name length so that when one command's name is
// a literal prefix of another's ("ban", "banlist") the longer name is tested
// first; ties keep registration order. Tasks are kept sorted by name.
type registry struct {
	commands     []*command.Command
	commandNames map[string]*command.Command
	tasks        []*command.Task
	taskNames    map[string]struct{}
}

func newRegistry() *registry {
	return &registry{
		commandNames: map[string]*command.Command{},
		taskNames:    map[string]struct{}{},
	}
}

// registerCommands validates and commits a batch. The batch is all-or-nothing:
// accepted entries are buffered and only appended to the living set once every
// candidate has been validated. Names in the disabled map are skipped the same
// way definitions marked Disabled are.
func (r *registry) registerCommands(batch []*command.Command, disabled map[string]bool) (RegistrationResult, error) {
	var result RegistrationResult
	staged := make([]*command.Command, 0, len(batch))
	stagedNames := map[string]*command.Command{}
	for _, c := range batch {
		if c == nil {
			return RegistrationResult{}, &ValidationError{Name: "<nil>", Reason: "nil command definition"}
		}
		name := strings.ToLower(strings.TrimSpace(c.Command))
		if name == "" || c.Disabled || disabled[name] {
			result.Disabled++
			continue
		}
		if c.Run == nil {
			return RegistrationResult{}, &ValidationError{Name: name, Reason: "command has no run action"}
		}
		accepted := *c
		accepted.Command = name
		accepted.Aliases = make([]string, 0, len(c.Aliases))
		if err := r.stageName(name, &accepted, false, stagedNames); err != nil {
			return RegistrationResult{}, err
		}
		for _, alias := range c.Aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				return RegistrationResult{}, &ValidationError{Name: alias, Command: name, Reason: "alias cannot be empty"}
			}
			if err := r.stageName(alias, &accepted, true, stagedNames); err != nil {
				return RegistrationResult{}, err
			}
			accepted.Aliases = append(accepted.Aliases, alias)
		}
		staged = append(staged, &accepted)
		result.Registered++
	}
	for name, c := range stagedNames {
		r.commandNames[name] = c
	}
	r.commands = append(r.commands, staged...)
	sort.SliceStable(r.commands, func(i, j int) bool {
		return len(r.commands[i].Command) > len(r.commands[j].Command)
	})
	return result, nil
}

func (r *registry) stageName(name string, owner *command.Command, isAlias bool, staged map[string]*command.Command) error {
	_, taken := r.commandNames[name]
	if !taken {
		_, taken = staged[name]
	}
	if taken {
		e := &ValidationError{Name: name, Reason: "name is already registered"}
		if isAlias {
			e.Command = owner.Command
		}
		return e
	}
	staged[name] = owner
	return nil
}

// registerTasks validates and commits a batch of tasks, all-or-nothing. Task
// identity is the declared name, compared verbatim.
func (r *registry) registerTasks(batch []*command.Task, disabled map[string]bool) (RegistrationResult, error) {
	var result RegistrationResult
	staged := make([]*command.Task, 0, len(batch))
	stagedNames := map[string]struct{}{}
	for _, t := range batch {
		if t == nil {
			return RegistrationResult{}, &ValidationError{Name: "<nil>", Reason: "nil task definition"}
		}
		if t.Disabled || disabled[t.Name] {
			result.Disabled++
			continue
		}
		if t.Name == "" {
			return RegistrationResult{}, &ValidationError{Name: t.Name, Reason: "task has no name"}
		}
		if t.Test == nil || t.Run == nil {
			return RegistrationResult{}, &ValidationError{Name: t.Name, Reason: "task needs both a test and a run action"}
		}
		_, taken := r.taskNames[t.Name]
		if !taken {
			_, taken = stagedNames[t.Name]
		}
		if taken {
			return RegistrationResult{}, &ValidationError{Name: t.Name, Reason: "task name is already registered"}
		}
		stagedNames[t.Name] = struct{}{}
		accepted := *t
		staged = append(staged, &accepted)
		result.Registered++
	}
	for name := range stagedNames {
		r.taskNames[name] = struct{}{}
	}
	r.tasks = append(r.tasks, staged...)
	sort.SliceStable(r.tasks, func(i, j int) bool {
		return r.tasks[i].Name < r.tasks[j].Name
	})
	return result, nil
}
