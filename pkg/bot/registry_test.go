package bot

import (
	"context"
	"testing"

	"github.com/heraldbot/herald/pkg/bot/command"
	"github.com/heraldbot/herald/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopRun(context.Context, domain.Message, *command.Invocation) error {
	return nil
}

func noopTask(context.Context, domain.Message, *command.Batch) error {
	return nil
}

func alwaysTest(domain.Message) (bool, error) {
	return true, nil
}

func TestRegisterCommandsOrdering(t *testing.T) {
	b := New()
	_, err := b.RegisterCommands([]*command.Command{
		{Command: "ban", Run: noopRun},
		{Command: "banlist", Run: noopRun},
		{Command: "b", Run: noopRun},
	})
	require.NoError(t, err)
	var names []string
	for _, c := range b.Commands() {
		names = append(names, c.Command)
	}
	assert.Equal(t, []string{"banlist", "ban", "b"}, names)
}

func TestRegisterCommandsNormalizesNames(t *testing.T) {
	b := New()
	result, err := b.RegisterCommands([]*command.Command{
		{Command: "  PiNg  ", Aliases: []string{" P "}, Run: noopRun},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Registered)
	registered := b.Commands()[0]
	assert.Equal(t, "ping", registered.Command)
	assert.Equal(t, []string{"p"}, registered.Aliases)
}

func TestRegisterCommandsDisabled(t *testing.T) {
	b := New()
	result, err := b.RegisterCommands([]*command.Command{
		{Command: "ping", Run: noopRun},
		{Command: "pong", Disabled: true, Run: noopRun},
		{Command: "   ", Run: noopRun},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Registered)
	assert.Equal(t, 2, result.Disabled)
	assert.Len(t, b.Commands(), 1)
}

func TestRegisterCommandsDuplicateName(t *testing.T) {
	b := New()
	_, err := b.RegisterCommands([]*command.Command{{Command: "ping", Run: noopRun}})
	require.NoError(t, err)

	_, err = b.RegisterCommands([]*command.Command{
		{Command: "pong", Run: noopRun},
		{Command: "ping", Run: noopRun},
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "ping", validation.Name)
	// the whole batch is rejected, including the valid entry before the duplicate
	assert.Len(t, b.Commands(), 1)
}

func TestRegisterCommandsDuplicateAliasNamesCommand(t *testing.T) {
	b := New()
	_, err := b.RegisterCommands([]*command.Command{
		{Command: "kick", Run: noopRun},
		{Command: "boot", Aliases: []string{"kick"}, Run: noopRun},
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "kick", validation.Name)
	assert.Equal(t, "boot", validation.Command)
	assert.Empty(t, b.Commands())
}

func TestRegisterCommandsAliasCollidesWithinCommand(t *testing.T) {
	b := New()
	_, err := b.RegisterCommands([]*command.Command{
		{Command: "mute", Aliases: []string{"silence", "Mute"}, Run: noopRun},
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "mute", validation.Name)
}

func TestRegisterCommandsNoRunAction(t *testing.T) {
	b := New()
	_, err := b.RegisterCommands([]*command.Command{{Command: "ping"}})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestRegisterCommandsConfigDisabled(t *testing.T) {
	b := New()
	b.disabled["ping"] = true
	result, err := b.RegisterCommands([]*command.Command{{Command: "PING", Run: noopRun}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Registered)
	assert.Equal(t, 1, result.Disabled)
}

func TestRegisterTasksSorted(t *testing.T) {
	b := New()
	result, err := b.RegisterTasks([]*command.Task{
		{Name: "zeta", Test: alwaysTest, Run: noopTask},
		{Name: "alpha", Test: alwaysTest, Run: noopTask},
		{Name: "mid", Test: alwaysTest, Run: noopTask},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Registered)
	var names []string
	for _, task := range b.Tasks() {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestRegisterTasksDuplicate(t *testing.T) {
	b := New()
	_, err := b.RegisterTasks([]*command.Task{{Name: "greet", Test: alwaysTest, Run: noopTask}})
	require.NoError(t, err)

	_, err = b.RegisterTasks([]*command.Task{
		{Name: "other", Test: alwaysTest, Run: noopTask},
		{Name: "greet", Test: alwaysTest, Run: noopTask},
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "greet", validation.Name)
	assert.Len(t, b.Tasks(), 1)
}

func TestRegisterTasksDisabledSkipped(t *testing.T) {
	b := New()
	result, err := b.RegisterTasks([]*command.Task{
		{Name: "off", Disabled: true, Test: alwaysTest, Run: noopTask},
		{Name: "on", Test: alwaysTest, Run: noopTask},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Registered)
	assert.Equal(t, 1, result.Disabled)
}
