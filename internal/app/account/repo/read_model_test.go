package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/models/m_user"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

func TestResolveUserOrder(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		order    string
		wantCol  string
		wantDir  query.Direction
	}{
		{"default", "", "", m_user.CreatedAt, query.Desc},
		{"unknown key falls back", "passwordHash", "", m_user.CreatedAt, query.Desc},
		{"name natural", contracts.SortByName, "", m_user.Name, query.Asc},
		{"email natural", contracts.SortByEmail, "", m_user.Email, query.Asc},
		{"role natural", contracts.SortByRole, "", m_user.Role, query.Asc},
		{"explicit desc", contracts.SortByName, contracts.SortDesc, m_user.Name, query.Desc},
		{"explicit asc on default", "", contracts.SortAsc, m_user.CreatedAt, query.Asc},
		{"garbage order keeps natural", contracts.SortByEmail, "sideways", m_user.Email, query.Asc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, dir := resolveUserOrder(tt.sortBy, tt.order)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
