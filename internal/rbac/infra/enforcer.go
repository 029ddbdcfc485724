package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the static permission table of the three roles. The role
// hierarchy is admin > rh > employe.
var policies = [][]string{
	{"employe", "demande", "read"},
	{"employe", "demande", "create"},
	{"employe", "demande", "update"},
	{"employe", "demande", "cancel"},
	{"employe", "solde", "read"},
	{"employe", "historique", "read"},

	{"rh", "demande", "read_all"},
	{"rh", "validation", "decide"},
	{"rh", "solde", "read_all"},
	{"rh", "employe", "read"},

	{"admin", "employe", "manage"},
}

var groupings = [][]string{
	{"rh", "employe"},
	{"admin", "rh"},
}

// NewEnforcer builds the casbin enforcer from the embedded model and the
// static policy table; there is no external policy storage to keep in
// sync.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range groupings {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
