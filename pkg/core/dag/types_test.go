package dag

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDAG_AssignsDistinctIDs(t *testing.T) {
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 1000; i++ {
		d := NewDAG(CreateDAGPayload{Name: "build"})
		require.NotEqual(t, uuid.Nil, d.ID)
		assert.Equal(t, uuid.Version(4), d.ID.Version())
		assert.False(t, seen[d.ID], "重复的ID: %s", d.ID)
		seen[d.ID] = true
	}
}

func TestNewDAG_AcceptsEmptyName(t *testing.T) {
	d := NewDAG(CreateDAGPayload{})
	assert.Equal(t, "", d.Name)
	assert.NotEqual(t, uuid.Nil, d.ID)
}

func TestNewEdge_AllowsSelfLoop(t *testing.T) {
	n := uuid.New()
	e := NewEdge(CreateEdgePayload{Source: n, Target: n, DagID: uuid.New()})
	assert.Equal(t, e.Source, e.Target)
	assert.NotEqual(t, n, e.ID)
}

func TestWireFormat(t *testing.T) {
	dagID := uuid.MustParse("4f0c3a52-9a1e-4b7e-8d6a-2f1b7c9e0a11")
	n := &Node{ID: uuid.MustParse("a8d5b6a4-3c2f-4e1d-9b0a-7e6f5d4c3b2a"), DagID: dagID, Label: "compile"}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a8d5b6a4-3c2f-4e1d-9b0a-7e6f5d4c3b2a","dag_id":"4f0c3a52-9a1e-4b7e-8d6a-2f1b7c9e0a11","label":"compile"}`, string(data))

	var p CreateEdgePayload
	err = json.Unmarshal([]byte(`{"source":"a8d5b6a4-3c2f-4e1d-9b0a-7e6f5d4c3b2a","target":"a8d5b6a4-3c2f-4e1d-9b0a-7e6f5d4c3b2a","dag_id":"4f0c3a52-9a1e-4b7e-8d6a-2f1b7c9e0a11"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, dagID, p.DagID)

	err = json.Unmarshal([]byte(`{"dag_id":"not-a-uuid","label":"x"}`), &CreateNodePayload{})
	assert.Error(t, err)
}

func TestCreatePayloads_RequireFields(t *testing.T) {
	nilID := uuid.Nil.String()
	tests := []struct {
		name    string
		body    string
		target  any
		wantErr string
	}{
		{"DAG缺少name", `{}`, &CreateDAGPayload{}, "missing field `name`"},
		{"DAG的name为null", `{"name":null}`, &CreateDAGPayload{}, "missing field `name`"},
		{"DAG请求体为null", `null`, &CreateDAGPayload{}, "null"},
		{"Node缺少dag_id", `{"label":"x"}`, &CreateNodePayload{}, "missing field `dag_id`"},
		{"Node缺少label", `{"dag_id":"` + nilID + `"}`, &CreateNodePayload{}, "missing field `label`"},
		{"Edge为空对象", `{}`, &CreateEdgePayload{}, "missing field `source`"},
		{"Edge缺少dag_id", `{"source":"` + nilID + `","target":"` + nilID + `"}`, &CreateEdgePayload{}, "missing field `dag_id`"},
		{"数组不是对象", `[]`, &CreateEdgePayload{}, "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.target)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreatePayloads_AcceptEmptyValues(t *testing.T) {
	var d CreateDAGPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &d))
	assert.Equal(t, "", d.Name)

	var n CreateNodePayload
	require.NoError(t, json.Unmarshal([]byte(`{"dag_id":"00000000-0000-0000-0000-000000000000","label":""}`), &n))
	assert.Equal(t, uuid.Nil, n.DagID)

	// 未知字段被忽略
	var e CreateEdgePayload
	id := uuid.New()
	body := `{"source":"` + id.String() + `","target":"` + id.String() + `","dag_id":"` + id.String() + `","weight":3}`
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	assert.Equal(t, CreateEdgePayload{Source: id, Target: id, DagID: id}, e)
}
