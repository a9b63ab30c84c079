package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMySql(t *testing.T) {
	t.Parallel()

	d, err := WithMySql("user:pass@tcp(localhost:3306)/cogmeter")
	require.Nil(t, err)

	assert.Equal(t, "mysql", d.Name())
}

func TestWithMySqlInvalidDSN(t *testing.T) {
	t.Parallel()

	_, err := WithMySql("user:pass@tcp(localhost:3306")
	assert.NotNil(t, err)

	_, err = WithMySql("user:pass@tcp(localhost:3306)/")
	assert.NotNil(t, err)
}
