package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cutgen.dev/pkg/cutgen/internal/domain"
	domainmocks "cutgen.dev/pkg/cutgen/internal/domain/mocks"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

func TestWatchCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Watch", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx != nil && ctx.Err() == nil
	}), mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Root == m.Path("/work/project") && args.Threads == 2 && args.Report == m.Path("run.yaml")
	})).Return(nil)

	cmd.SetArgs([]string{"watch", "/work/project", "--parallel", "2", "--report", "run.yaml"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestNewWatchCmd(t *testing.T) {
	cmd := newWatchCmd()

	assert.Equal(t, "watch [root]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, watchLongDescription, cmd.Long)
}
