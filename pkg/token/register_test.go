package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("same name returns same id", func(t *testing.T) {
		assert.Equal(t, Register("TEST_IDEMPOTENT"), Register("TEST_IDEMPOTENT"))
	})

	t.Run("different names get different ids", func(t *testing.T) {
		assert.NotEqual(t, Register("TEST_NAME_A"), Register("TEST_NAME_B"))
	})

	t.Run("ids are dynamic", func(t *testing.T) {
		assert.True(t, IsDynamic(Register("TEST_DYNAMIC_CHECK")))
		assert.False(t, IsDynamic(SELECT))
		assert.False(t, IsDynamic(EOF))
	})
}

func TestRegisterConcurrent(t *testing.T) {
	const workers = 64
	var wg sync.WaitGroup
	ids := make([]TokenType, workers)

	for i := range workers {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("TEST_CONCURRENT")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Equal(t, ids[0], ids[i])
	}
}

func TestLookupDynamicKeyword(t *testing.T) {
	want := Register("TEST_LOOKUP")

	got, ok := LookupDynamicKeyword("TEST_LOOKUP")
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, "TEST_LOOKUP", got.String())

	got, ok = LookupDynamicKeyword("NONEXISTENT_KEYWORD_12345")
	assert.False(t, ok)
	assert.Equal(t, IDENT, got)
}

func TestRegisteredTokensIsCopy(t *testing.T) {
	id := Register("TEST_REGISTERED_TOKENS")

	tokens := RegisteredTokens()
	assert.Equal(t, "TEST_REGISTERED_TOKENS", tokens[id])

	tokens[id] = "MODIFIED"
	assert.Equal(t, "TEST_REGISTERED_TOKENS", RegisteredTokens()[id])
}
