package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	secX = domain.NewComputationTargetSpecification(domain.TargetSecurity, domain.NewUniqueID("SEC", "X", "1"))
	secY = domain.NewComputationTargetSpecification(domain.TargetSecurity, domain.NewUniqueID("SEC", "Y", "1"))
)

func spec(valueName, functionID string, target domain.ComputationTargetSpecification) domain.ValueSpecification {
	return domain.ValueSpecification{ValueName: valueName, Target: target, FunctionID: functionID}
}

func node(functionID string, target domain.ComputationTargetSpecification, inputs, outputs []domain.ValueSpecification) *domain.DependencyNode {
	return &domain.DependencyNode{
		FunctionID: functionID,
		Target:     domain.ComputationTarget{Spec: target},
		Inputs:     inputs,
		Outputs:    outputs,
		LiveData:   functionID == domain.LiveDataFunctionID,
	}
}

func mustAdd(t *testing.T, g *domain.DependencyGraph, nodes ...*domain.DependencyNode) {
	t.Helper()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("failed to add node %s: %v", n.FunctionID, err)
		}
	}
}

func TestDependencyGraph_AddNode_DuplicateOutput(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	pv := spec("PV", "fnA", secX)

	mustAdd(t, g, node("fnA", secX, nil, []domain.ValueSpecification{pv}))

	err := g.AddNode(node("fnA", secX, nil, []domain.ValueSpecification{pv}))
	if err == nil {
		t.Fatal("expected error when adding a second producer, got nil")
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if value, ok := zErr.Metadata()["value"].(string); !ok || value != pv.String() {
		t.Errorf("expected metadata value=%s, got %v", pv, zErr.Metadata()["value"])
	}
	if g.NodeCount() != 1 {
		t.Errorf("expected rejected node to be left out, got %d nodes", g.NodeCount())
	}
}

func TestDependencyGraph_AddTerminalOutput_MissingProducer(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	req := domain.NewValueRequirement("PV", secX)

	if err := g.AddTerminalOutput(spec("PV", "fnA", secX), req); err == nil {
		t.Fatal("expected error for a terminal output nobody produces, got nil")
	}
}

func TestDependencyGraph_TerminalOutputs_ReturnsCopy(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	pv := spec("PV", "fnA", secX)
	mustAdd(t, g, node("fnA", secX, nil, []domain.ValueSpecification{pv}))
	if err := g.AddTerminalOutput(pv, domain.NewValueRequirement("PV", secX)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outputs := g.TerminalOutputs()
	delete(outputs, pv)

	if got := len(g.TerminalOutputs()[pv]); got != 1 {
		t.Errorf("expected graph terminal outputs to be unaffected, got %d requirements", got)
	}
}

func TestDependencyGraph_RemoveUnnecessaryValues(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	price := spec("Price", domain.LiveDataFunctionID, secX)
	pv := spec("PV", "fnPV", secX)
	greeks := spec("Greeks", "fnPV", secX)
	junk := spec("Junk", "fnJunk", secY)

	mustAdd(t, g,
		node(domain.LiveDataFunctionID, secX, nil, []domain.ValueSpecification{price}),
		node("fnPV", secX, []domain.ValueSpecification{price}, []domain.ValueSpecification{pv, greeks}),
		node("fnJunk", secY, []domain.ValueSpecification{price}, []domain.ValueSpecification{junk}),
	)
	if err := g.AddTerminalOutput(pv, domain.NewValueRequirement("PV", secX)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.RemoveUnnecessaryValues()

	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes after pruning, got %d", g.NodeCount())
	}
	if _, ok := g.Producer(greeks); ok {
		t.Error("expected unrequested output Greeks to be pruned")
	}
	if _, ok := g.Producer(junk); ok {
		t.Error("expected unused node output Junk to be pruned")
	}
	outputs := g.OutputSpecifications()
	if len(outputs) != 2 || outputs[0] != pv || outputs[1] != price {
		t.Errorf("unexpected outputs after pruning: %v", outputs)
	}
	if targets := g.ComputationTargets(); len(targets) != 1 || targets[0] != secX {
		t.Errorf("unexpected targets after pruning: %v", targets)
	}

	// Pruning again changes nothing.
	g.RemoveUnnecessaryValues()
	if g.NodeCount() != 2 || len(g.OutputSpecifications()) != 2 {
		t.Errorf("expected pruning to be idempotent, got %d nodes and %d outputs",
			g.NodeCount(), len(g.OutputSpecifications()))
	}

	live := g.AllRequiredLiveData()
	if len(live) != 1 || live[0] != price {
		t.Errorf("unexpected live data: %v", live)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("unexpected validation error after pruning: %v", err)
	}
}

func TestDependencyGraph_RemoveUnnecessaryValues_NoTerminals(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	mustAdd(t, g, node("fnA", secX, nil, []domain.ValueSpecification{spec("A", "fnA", secX)}))

	g.RemoveUnnecessaryValues()

	if g.NodeCount() != 0 {
		t.Errorf("expected every node to be pruned, got %d", g.NodeCount())
	}
}

func TestDependencyGraph_Validate_MissingProducer(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	price := spec("Price", domain.LiveDataFunctionID, secX)
	mustAdd(t, g, node("fnPV", secX, []domain.ValueSpecification{price}, []domain.ValueSpecification{spec("PV", "fnPV", secX)}))

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for a missing producer, got nil")
	}
	if err.Error() != domain.ErrMissingProducer.Error() {
		t.Errorf("expected missing producer error, got %v", err)
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if value, ok := zErr.Metadata()["value"].(string); !ok || value != price.String() {
		t.Errorf("expected metadata value=%s, got %v", price, zErr.Metadata()["value"])
	}
}

func TestDependencyGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	a := spec("A", "fnA", secX)
	b := spec("B", "fnB", secX)
	mustAdd(t, g,
		node("fnA", secX, []domain.ValueSpecification{b}, []domain.ValueSpecification{a}),
		node("fnB", secX, []domain.ValueSpecification{a}, []domain.ValueSpecification{b}),
	)

	order, err := g.ExecutionOrder()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if order != nil {
		t.Errorf("expected no execution order for a cyclic graph, got %d nodes", len(order))
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}

	want := "fnA(SEC~X~1) -> fnB(SEC~X~1) -> fnA(SEC~X~1)"
	if cycle, ok := zErr.Metadata()["cycle"].(string); !ok || cycle != want {
		t.Errorf("expected metadata cycle=%q, got %v", want, zErr.Metadata()["cycle"])
	}
}

func TestDependencyGraph_ExecutionOrder(t *testing.T) {
	g := domain.NewDependencyGraph("Default")
	// A needs B needs C.
	// Execution order: C, B, A
	a := spec("A", "fnA", secX)
	b := spec("B", "fnB", secX)
	c := spec("C", "fnC", secX)
	mustAdd(t, g,
		node("fnA", secX, []domain.ValueSpecification{b}, []domain.ValueSpecification{a}),
		node("fnB", secX, []domain.ValueSpecification{c}, []domain.ValueSpecification{b}),
		node("fnC", secX, nil, []domain.ValueSpecification{c}),
	)

	before := slices.Collect(g.Nodes())
	order, err := g.ExecutionOrder()
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	executed := make([]string, 0, 3)
	for _, n := range order {
		executed = append(executed, n.FunctionID)
	}

	if len(executed) != 3 {
		t.Fatalf("expected 3 nodes executed, got %d", len(executed))
	}
	if executed[0] != "fnC" || executed[1] != "fnB" || executed[2] != "fnA" {
		t.Errorf("unexpected execution order: %v", executed)
	}

	if !slices.Equal(before, slices.Collect(g.Nodes())) {
		t.Error("expected ordering to leave the graph's nodes untouched")
	}
}
