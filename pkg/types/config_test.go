package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConfigIsPlaceholder(t *testing.T) {
	filled := DBConfig{Host: "db.example.com", Port: 5432, User: "ref", Password: "secret", Name: "refbook"}

	tests := []struct {
		name   string
		mutate func(c *DBConfig)
		want   bool
	}{
		{
			name:   "real credentials",
			mutate: func(c *DBConfig) {},
			want:   false,
		},
		{
			name:   "empty config",
			mutate: func(c *DBConfig) { *c = DBConfig{} },
			want:   true,
		},
		{
			name:   "template host",
			mutate: func(c *DBConfig) { c.Host = "<your-host>" },
			want:   true,
		},
		{
			name:   "template password",
			mutate: func(c *DBConfig) { c.Password = "<your-password>" },
			want:   true,
		},
		{
			name:   "missing database name",
			mutate: func(c *DBConfig) { c.Name = "" },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := filled
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.IsPlaceholder())
		})
	}
}

func TestConfigWantsDatabase(t *testing.T) {
	assert.False(t, Config{}.WantsDatabase(), "empty config should stay on JSON")
	assert.False(t, Config{DB: DBConfig{Host: "<your-host>"}}.WantsDatabase(),
		"placeholder credentials count as absent")
	assert.True(t, Config{DBPath: "games.db"}.WantsDatabase())
	assert.True(t, Config{DBPath: "postgres://u:p@h/db"}.WantsDatabase())
	assert.True(t, Config{DB: DBConfig{Host: "h", User: "u", Password: "p", Name: "d"}}.WantsDatabase())
}
