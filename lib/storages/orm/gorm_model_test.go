package orm

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/cogmeter/lib/model"
)

func TestEqualsEmpty(t *testing.T) {
	t.Parallel()

	f1 := &sqlFile{}
	f2 := &sqlFile{}

	assert.True(t, reflect.DeepEqual(f1, f2))

	f1.Name = "a"
	assert.False(t, reflect.DeepEqual(f1, f2))
}

func TestEqualsSize(t *testing.T) {
	t.Parallel()

	s1 := model.NewSize()
	s1.Lines = 10
	s2 := model.NewSize()
	s2.Lines = 10

	f1 := &sqlFile{Size: newSqlSize(s1)}
	f2 := &sqlFile{Size: newSqlSize(s2)}

	assert.True(t, reflect.DeepEqual(f1, f2))

	v := 11
	f1.Size.Lines = &v
	assert.False(t, reflect.DeepEqual(f1, f2))
}

func TestEqualsData(t *testing.T) {
	t.Parallel()

	f1 := &sqlFile{
		Data: map[string]string{
			"a": "b",
		},
	}
	f2 := &sqlFile{
		Data: map[string]string{
			"a": "b",
		},
	}

	assert.True(t, reflect.DeepEqual(f1, f2))

	f1.Data["a"] = "c"
	assert.False(t, reflect.DeepEqual(f1, f2))
}

func TestPrepareChangeIgnoresTimestamps(t *testing.T) {
	t.Parallel()

	cache := map[string]*sqlFunction{}

	f1 := &sqlFunction{ID: 1, Name: "a", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	assert.True(t, prepareChange(&cache, f1))

	f2 := &sqlFunction{ID: 1, Name: "a"}
	assert.False(t, prepareChange(&cache, f2))

	f3 := &sqlFunction{ID: 1, Name: "a", ComplexityCognitive: 2}
	assert.True(t, prepareChange(&cache, f3))
	assert.Equal(t, f3, cache["1"])
}

func TestNamingStrategy(t *testing.T) {
	t.Parallel()

	n := &NamingStrategy{}

	assert.Equal(t, "files", n.TableName("sqlFile"))
	assert.Equal(t, "functions", n.TableName("sqlFunction"))
	assert.Equal(t, "configs", n.TableName("sqlConfig"))
}

func TestMetricEncoding(t *testing.T) {
	t.Parallel()

	assert.Nil(t, encodeMetric(-1))
	assert.Equal(t, 3, *encodeMetric(3))
	assert.Equal(t, -1, decodeMetric(nil))
	assert.Nil(t, encodeMap(map[string]string{}))
	assert.Equal(t, map[string]string{}, decodeMap[string, string](nil))
}
