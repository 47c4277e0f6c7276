package argbind

import (
	"strings"
	"testing"

	. "github.com/arikkfir/justest"
	"github.com/google/go-cmp/cmp"
)

func chainNames(n *node) []string {
	var names []string
	for _, c := range n.chain() {
		names = append(names, c.name)
	}
	return names
}

func TestBuildTree(t *testing.T) {
	t.Parallel()
	type testCase struct {
		configFactory func() any
		args          []string
		expectedChain []string
		expectedError string
	}
	testCases := map[string]testCase{
		"no arguments": {
			configFactory: func() any { return &SubcommandContainer{} },
			expectedChain: []string{"root"},
		},
		"first level subcommand": {
			configFactory: func() any { return &SubcommandContainer{} },
			args:          strings.Split("withFlagsSub --on", " "),
			expectedChain: []string{"root", "withFlagsSub"},
		},
		"second level subcommand": {
			configFactory: func() any { return &SubcommandContainer{} },
			args:          strings.Split("withNamedSub withFlagsSub --on -f 987.654", " "),
			expectedChain: []string{"root", "withNamedSub", "withFlagsSub"},
		},
		"subcommand names are matched by position only": {
			configFactory: func() any { return &SubcommandContainer{} },
			args:          strings.Split("--namedParam withNamedSub", " "),
			expectedChain: []string{"root"},
		},
		"subcommand name at the wrong depth": {
			configFactory: func() any { return &SubcommandContainer{} },
			args:          strings.Split("withNamedSub --float 1 withFlagsSub", " "),
			expectedChain: []string{"root", "withNamedSub"},
		},
		"deep nesting": {
			configFactory: func() any { return &NestedSubcommandContainer{} },
			args:          strings.Split("nestedSubChild nestedSubGrandchild --grandchildFlag", " "),
			expectedChain: []string{"root", "nestedSubChild", "nestedSubGrandchild"},
		},
		"invalid declaration in activated subcommand": {
			configFactory: func() any {
				return &struct {
					Sub *FlagOnNonBool `arg:"subcommand" name:"sub"`
				}{}
			},
			args:          []string{"sub"},
			expectedError: `^failed building subcommand 'sub': invalid field 'argbind.FlagOnNonBool.NotABool': flags cannot be applied to float32 fields$`,
		},
		"invalid declaration in inactive subcommand is not detected": {
			configFactory: func() any {
				return &struct {
					Sub *FlagOnNonBool `arg:"subcommand" name:"sub"`
				}{}
			},
			args:          []string{"other"},
			expectedChain: []string{"root"},
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			root, err := buildTree("root", "", tc.configFactory(), tc.args, 0)
			if tc.expectedError != "" {
				With(t).Verify(err).Will(Fail(tc.expectedError)).OrFail()
			} else {
				With(t).Verify(err).Will(BeNil()).OrFail()
				With(t).Verify(chainNames(root)).Will(EqualTo(tc.expectedChain)).OrFail()
			}
		})
	}
}

func TestBuildTreeRoleOrder(t *testing.T) {
	t.Parallel()

	t.Run("leaf collects positionals after options and subcommands", func(t *testing.T) {
		t.Parallel()
		root, err := buildTree("root", "", &SubcommandContainer{}, nil, 0)
		With(t).Verify(err).Will(BeNil()).OrFail()
		With(t).Verify(usageRowsOf(root.roles)).Will(EqualTo([]usageRow{
			{name: "-n|--namedParam", typeName: "string"},
			{name: "--flagParam"},
			{name: "withNamedSub"},
			{name: "withFlagsSub"},
			{name: "withPositionalsSub"},
			{name: "positional", typeName: "string"},
		}, cmp.AllowUnexported(usageRow{}))).OrFail()
	})

	t.Run("non-leaf skips positionals but registers all subcommands", func(t *testing.T) {
		t.Parallel()
		cfg := &SubcommandContainer{}
		root, err := buildTree("root", "", cfg, []string{"withFlagsSub"}, 0)
		With(t).Verify(err).Will(BeNil()).OrFail()
		With(t).Verify(usageRowsOf(root.roles)).Will(EqualTo([]usageRow{
			{name: "-n|--namedParam", typeName: "string"},
			{name: "--flagParam"},
			{name: "withNamedSub"},
			{name: "withFlagsSub"},
			{name: "withPositionalsSub"},
		}, cmp.AllowUnexported(usageRow{}))).OrFail()
		With(t).Verify(cfg.WithFlags).Will(Not(BeNil())).OrFail()
		With(t).Verify(cfg.WithNamed).Will(BeNil()).OrFail()
		With(t).Verify(cfg.WithPositionals).Will(BeNil()).OrFail()
		With(t).Verify(root.child.target.(*SubcommandWithFlags) == cfg.WithFlags).Will(EqualTo(true)).OrFail()
	})
}

func TestNodeNames(t *testing.T) {
	t.Parallel()
	root, err := buildTree("app", "", &NestedSubcommandContainer{}, strings.Split("nestedSubChild nestedSubGrandchild", " "), 0)
	With(t).Verify(err).Will(BeNil()).OrFail()
	With(t).Verify(root.fullName()).Will(EqualTo("app nestedSubChild nestedSubGrandchild")).OrFail()
	With(t).Verify(root.leaf().name).Will(EqualTo("nestedSubGrandchild")).OrFail()
	With(t).Verify(root.leaf().help).Will(EqualTo("The grandchild command")).OrFail()
	With(t).Verify(root.child.fullName()).Will(EqualTo("nestedSubChild nestedSubGrandchild")).OrFail()

	single, err := buildTree("app", "", &Empty{}, nil, 0)
	With(t).Verify(err).Will(BeNil()).OrFail()
	With(t).Verify(single.fullName()).Will(EqualTo("app")).OrFail()
	With(t).Verify(single.leaf() == single).Will(EqualTo(true)).OrFail()
}
