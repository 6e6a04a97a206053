package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExemptionRegistry(t *testing.T) {
	registry := NewExemptionRegistry([]string{"crmHelper", "portalInit"})

	assert.True(t, registry.IsExempt("crmHelper"))
	assert.True(t, registry.IsExempt("portalInit"))
	assert.False(t, registry.IsExempt("other"))
	assert.Equal(t, 2, registry.Len())
}

func TestExemptionRegistry_Empty(t *testing.T) {
	registry := NewExemptionRegistry(nil)

	assert.False(t, registry.IsExempt("anything"))
	assert.Equal(t, 0, registry.Len())
}

func TestExemptionRegistry_Duplicates(t *testing.T) {
	registry := NewExemptionRegistry([]string{"a", "a"})
	assert.Equal(t, 1, registry.Len())
}
