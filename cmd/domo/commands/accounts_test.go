package commands

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	domo.AccountsClient

	types map[string]*domo.AccountType
}

func (f *fakeAccounts) GetType(_ context.Context, id string) (*domo.AccountType, error) {
	accountType, ok := f.types[id]
	if !ok {
		return nil, &domo.APIError{Status: 404, Message: "Not Found"}
	}

	return accountType, nil
}

func TestNewAccountFromType(t *testing.T) {
	t.Parallel()

	accounts := &fakeAccounts{
		types: map[string]*domo.AccountType{
			"mysql": {
				ID:   domo.Ptr("mysql"),
				Name: domo.Ptr("MySQL"),
				Templates: map[string]domo.AccountTemplate{
					domo.DefaultAccountTemplate: {
						Properties: []domo.Property{
							{Name: domo.Ptr("user"), Prompt: domo.Ptr("Enter user")},
							{Name: domo.Ptr("password")},
						},
					},
				},
			},
			"bare": {ID: domo.Ptr("bare")},
		},
	}

	t.Run("seeds properties from the default template", func(t *testing.T) {
		t.Parallel()

		account, err := newAccountFromType(context.Background(), accounts, "mysql")
		require.NoError(t, err)
		require.NotNil(t, account.Type)

		assert.Equal(t, "mysql", *account.Type.ID)
		assert.Equal(t, map[string]string{
			"user":     "TODO: Enter user",
			"password": "TODO: ",
		}, account.Type.Properties)
		assert.Equal(t, "Account Name", *account.Name)
	})

	t.Run("type without a default template is attached as is", func(t *testing.T) {
		t.Parallel()

		account, err := newAccountFromType(context.Background(), accounts, "bare")
		require.NoError(t, err)
		assert.Same(t, accounts.types["bare"], account.Type)
		assert.Nil(t, account.Type.Properties)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := newAccountFromType(context.Background(), accounts, "nope")
		require.Error(t, err)
		assert.True(t, domo.IsNotFound(err))
	})
}
