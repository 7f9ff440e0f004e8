package engine

import (
	"context"
)

// mockCapability is an in-memory line capability that honors writes and
// counts every call, so tests can assert exact invocation behavior.
type mockCapability struct {
	countVal int

	active map[int]bool
	dirs   map[int]string
	values map[int]string
	edges  map[int]string

	calls    map[string]int
	total    int
	failOps  map[string]error
	failOnce map[string]error
}

func newMockCapability(count int) *mockCapability {
	return &mockCapability{
		countVal: count,
		active:   make(map[int]bool),
		dirs:     make(map[int]string),
		values:   make(map[int]string),
		edges:    make(map[int]string),
		calls:    make(map[string]int),
		failOps:  make(map[string]error),
		failOnce: make(map[string]error),
	}
}

func (m *mockCapability) record(op string) error {
	m.total++
	m.calls[op]++
	if err, ok := m.failOnce[op]; ok {
		delete(m.failOnce, op)
		return err
	}
	if err, ok := m.failOps[op]; ok {
		return err
	}
	return nil
}

func (m *mockCapability) LineCount(ctx context.Context) (int, error) {
	if err := m.record("count"); err != nil {
		return 0, err
	}
	return m.countVal, nil
}

func (m *mockCapability) Activate(ctx context.Context, line int) error {
	if err := m.record("activate"); err != nil {
		return err
	}
	m.active[line] = true
	return nil
}

func (m *mockCapability) ActivateGroup(ctx context.Context, lines []int) error {
	if err := m.record("activate_group"); err != nil {
		return err
	}
	for _, line := range lines {
		m.active[line] = true
	}
	return nil
}

func (m *mockCapability) Deactivate(ctx context.Context, line int) error {
	if err := m.record("deactivate"); err != nil {
		return err
	}
	delete(m.active, line)
	return nil
}

func (m *mockCapability) DeactivateGroup(ctx context.Context, lines []int) error {
	if err := m.record("deactivate_group"); err != nil {
		return err
	}
	for _, line := range lines {
		delete(m.active, line)
	}
	return nil
}

func (m *mockCapability) Direction(ctx context.Context, line int) (string, error) {
	if err := m.record("get_direction"); err != nil {
		return "", err
	}
	if dir, ok := m.dirs[line]; ok {
		return dir, nil
	}
	return "in", nil
}

func (m *mockCapability) SetDirection(ctx context.Context, line int, direction string) error {
	if err := m.record("set_direction"); err != nil {
		return err
	}
	m.dirs[line] = direction
	return nil
}

func (m *mockCapability) Value(ctx context.Context, line int) (string, error) {
	if err := m.record("get_value"); err != nil {
		return "", err
	}
	if value, ok := m.values[line]; ok {
		return value, nil
	}
	return "0", nil
}

func (m *mockCapability) SetValue(ctx context.Context, line int, value string) error {
	if err := m.record("set_value"); err != nil {
		return err
	}
	m.values[line] = value
	return nil
}

func (m *mockCapability) Edge(ctx context.Context, line int) (string, error) {
	if err := m.record("get_edge"); err != nil {
		return "", err
	}
	if edge, ok := m.edges[line]; ok {
		return edge, nil
	}
	return "none", nil
}

func (m *mockCapability) SetEdge(ctx context.Context, line int, edge string) error {
	if err := m.record("set_edge"); err != nil {
		return err
	}
	m.edges[line] = edge
	return nil
}
