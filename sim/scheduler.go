package sim

import (
	"fmt"
	"strings"
)

// Policy identifies a head-scheduling policy.
type Policy int

const (
	PolicyFCFS Policy = iota
	PolicySSTF
	PolicySCAN
	PolicyCSCAN
	PolicyLOOK
	PolicyCLOOK
	PolicyFSCAN
	PolicyNStepSCAN
)

// policySpec binds a policy to its traversal routine and the parameters it reads.
type policySpec struct {
	name          string
	usesDirection bool
	usesDiskSize  bool
	usesStepSize  bool
	schedule      func(h *head, p Params)
}

var policySpecs = [...]policySpec{
	PolicyFCFS:      {name: "fcfs", schedule: fcfs},
	PolicySSTF:      {name: "sstf", schedule: sstf},
	PolicySCAN:      {name: "scan", usesDirection: true, usesDiskSize: true, schedule: scan},
	PolicyCSCAN:     {name: "cscan", usesDirection: true, usesDiskSize: true, schedule: cscan},
	PolicyLOOK:      {name: "look", usesDirection: true, schedule: look},
	PolicyCLOOK:     {name: "clook", usesDirection: true, schedule: clook},
	PolicyFSCAN:     {name: "fscan", usesDirection: true, usesDiskSize: true, schedule: fscan},
	PolicyNStepSCAN: {name: "nstep-scan", usesDirection: true, usesDiskSize: true, usesStepSize: true, schedule: nstepScan},
}

// validPolicies maps accepted policy names, including aliases, to policies.
var validPolicies = map[string]Policy{
	"fcfs":        PolicyFCFS,
	"sstf":        PolicySSTF,
	"scan":        PolicySCAN,
	"cscan":       PolicyCSCAN,
	"c-scan":      PolicyCSCAN,
	"look":        PolicyLOOK,
	"clook":       PolicyCLOOK,
	"c-look":      PolicyCLOOK,
	"fscan":       PolicyFSCAN,
	"f-scan":      PolicyFSCAN,
	"nstep-scan":  PolicyNStepSCAN,
	"n-step-scan": PolicyNStepSCAN,
	"nstep":       PolicyNStepSCAN,
	"nstepscan":   PolicyNStepSCAN,
}

// AllPolicies returns every policy in declaration order.
func AllPolicies() []Policy {
	all := make([]Policy, len(policySpecs))
	for i := range policySpecs {
		all[i] = Policy(i)
	}
	return all
}

// IsValidPolicy returns true if name (case-insensitive) is a recognized policy or alias.
func IsValidPolicy(name string) bool {
	_, ok := validPolicies[strings.ToLower(name)]
	return ok
}

// ParsePolicy resolves a policy name or alias.
func ParsePolicy(name string) (Policy, error) {
	if p, ok := validPolicies[strings.ToLower(name)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w %q; valid: %s", ErrUnknownPolicy, name, strings.Join(PolicyNames(), ", "))
}

// PolicyNames returns the canonical policy names in declaration order.
func PolicyNames() []string {
	names := make([]string, len(policySpecs))
	for i, s := range policySpecs {
		names[i] = s.name
	}
	return names
}

func (p Policy) valid() bool {
	return p >= 0 && int(p) < len(policySpecs)
}

func (p Policy) String() string {
	if !p.valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policySpecs[p].name
}

// UsesDirection reports whether the policy reads Params.Direction.
func (p Policy) UsesDirection() bool { return p.valid() && policySpecs[p].usesDirection }

// UsesDiskSize reports whether the policy sweeps to a disk extreme and reads Params.DiskSize.
func (p Policy) UsesDiskSize() bool { return p.valid() && policySpecs[p].usesDiskSize }

// UsesStepSize reports whether the policy reads Params.StepSize.
func (p Policy) UsesStepSize() bool { return p.valid() && policySpecs[p].usesStepSize }

// maxSteps bounds the visit sequence length: the start position, every
// request, and the synthetic boundary stops the policy may add.
func (p Policy) maxSteps(params Params) int {
	n := len(params.Requests)
	switch p {
	case PolicySCAN, PolicyFSCAN:
		return n + 1 + scanSweep.boundaryStops()
	case PolicyCSCAN:
		return n + 1 + cscanSweep.boundaryStops()
	case PolicyNStepSCAN:
		return n + 1 + batchCount(params.StepSize, n)*scanSweep.boundaryStops()
	}
	return n + 1
}
