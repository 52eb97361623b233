package code

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDataReturnsCopy(t *testing.T) {
	a := Success.WithData("payload-a")
	b := Success.WithData("payload-b")

	assert.Equal(t, "payload-a", a.Data())
	assert.Equal(t, "payload-b", b.Data())
	assert.NotSame(t, a, b)

	// The registry instance stays undecorated
	// 注册表中的原实例不被装饰
	assert.False(t, Success.HaveData())
	assert.Nil(t, Success.Data())
}

func TestWithDetailsChainKeepsEarlierDecoration(t *testing.T) {
	c := ErrorInvalidParams.WithDetails("name is required").WithData("field map")

	assert.Equal(t, []string{"name is required"}, c.Details())
	assert.Equal(t, "field map", c.Data())
	assert.False(t, ErrorInvalidParams.HaveDetails())
	assert.False(t, ErrorInvalidParams.HaveData())
}

func TestErrorsIsMatchesAcrossCopies(t *testing.T) {
	decorated := ErrorVaultAccessDenied.WithDetails("record check failed")

	require.ErrorIs(t, decorated, ErrorVaultAccessDenied)
	assert.NotErrorIs(t, decorated, ErrorVaultEntryNotFound)
	assert.NotErrorIs(t, decorated, Success)
}

func TestWithDataConcurrent(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	results := make([]*Code, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n] = Success.WithData(fmt.Sprintf("payload-%d", n))
		}(i)
	}
	wg.Wait()

	// Every caller keeps its own payload
	// 每个调用方保留自己的数据
	for i, c := range results {
		assert.Equal(t, fmt.Sprintf("payload-%d", i), c.Data())
	}
}

func TestMessageIn(t *testing.T) {
	assert.Equal(t, "Success", Success.Lang.MessageIn("en"))
	assert.Equal(t, "成功", Success.Lang.MessageIn("zh_cn"))

	// Unsupported language falls back to English
	// 不支持的语言回退到英文
	assert.Equal(t, "Success", Success.Lang.MessageIn("fr"))
	assert.Equal(t, "Success", Success.Lang.MessageIn(""))
}
