package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cutgen.dev/pkg/cutgen/internal/domain"
	domainmocks "cutgen.dev/pkg/cutgen/internal/domain/mocks"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == m.Path("/work/project") && len(args.Modules) == 1 && args.Modules[0] == "Diag"
	})).Return([]m.TargetListing{}, nil)

	cmd.SetArgs([]string{"list", "--module", "Diag", "/work/project"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_ModulesRootNotFound(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.Anything).Return(nil, domain.ErrModulesRootNotFound)

	cmd.SetArgs([]string{"list"})
	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrModulesRootNotFound)
	assert.Equal(t, 2, exitCode(err))
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [root]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
}
