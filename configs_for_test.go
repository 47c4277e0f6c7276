package argbind

import (
	"github.com/shopspring/decimal"
)

type Empty struct{}

type NamedPrimitives struct {
	Byte    uint8           `arg:"named" short:"b" long:"byte" required:"true"`
	Short   int16           `arg:"named" short:"s" long:"short"`
	UShort  uint16          `arg:"named" short:"t" long:"ushort"`
	Int     int32           `arg:"named" short:"i" long:"int"`
	UInt    uint32          `arg:"named" short:"j" long:"uint"`
	Long    int64           `arg:"named" short:"l" long:"long"`
	ULong   uint64          `arg:"named" short:"o" long:"ulong"`
	Char    Char            `arg:"named" short:"c" long:"char"`
	Float   float32         `arg:"named" short:"f" long:"float"`
	Double  float64         `arg:"named" short:"d" long:"double"`
	Decimal decimal.Decimal `arg:"named" short:"m" long:"decimal"`
	String  string          `arg:"named" short:"g" long:"string"`
}

type PositionalPrimitives struct {
	Byte    uint8
	Short   int16
	UShort  uint16
	Int     int32
	UInt    uint32
	Long    int64
	ULong   uint64
	Char    Char
	Float   float32
	Double  float64
	Decimal decimal.Decimal
	String  string
}

func (c *PositionalPrimitives) Roles() []Role {
	return []Role{
		Positional(&c.Byte, "byte", ""),
		Positional(&c.Short, "short", ""),
		Positional(&c.UShort, "ushort", ""),
		Positional(&c.Int, "int", ""),
		Positional(&c.UInt, "uint", ""),
		Positional(&c.Long, "long", ""),
		Positional(&c.ULong, "ulong", ""),
		Positional(&c.Char, "char", ""),
		Positional(&c.Float, "float", ""),
		Positional(&c.Double, "double", ""),
		Positional(&c.Decimal, "decimal", ""),
		Positional(&c.String, "string", ""),
	}
}

type FlagBooleans struct {
	False1    bool `arg:"flag" long:"False1"`
	True1     bool `arg:"flag" long:"True1"`
	True2     bool `arg:"flag" long:"True2"`
	False2    bool `arg:"flag" long:"False2"`
	TrueChar  bool `arg:"flag" short:"t"`
	FalseChar bool `arg:"flag" short:"f"`
	X         bool `arg:"flag" short:"x" long:"isX"`
	Y         bool `arg:"flag" short:"y" long:"isY"`
}

type DefaultValues struct {
	Def int `arg:"named" short:"d" long:"defaultVal456"`
}

type ReservedHelpFlag struct {
	Help bool `arg:"flag" long:"help"`
}

type ReservedVersionName struct {
	Version string `arg:"named" short:"v" long:"version"`
}

type WhiteSpaceSubcommand struct {
	MockSubcommand *Empty `arg:"subcommand" name:"Mock Subcommand"`
}

type FlagOnNonBool struct {
	NotABool float32 `arg:"flag" long:"NotAFlag"`
}

type SubcommandContainer struct {
	WithNamed       *SubcommandWithNamed
	WithFlags       *SubcommandWithFlags
	WithPositionals *SubcommandWithPositionals
	NamedParam      string
	FlagParam       bool
	Positional      string
}

func (c *SubcommandContainer) Roles() []Role {
	return []Role{
		Subcommand(&c.WithNamed, "withNamedSub", ""),
		Subcommand(&c.WithFlags, "withFlagsSub", ""),
		Subcommand(&c.WithPositionals, "withPositionalsSub", ""),
		Named(&c.NamedParam, 'n', "namedParam", ""),
		Flag(&c.FlagParam, 0, "flagParam", ""),
		Positional(&c.Positional, "positional", ""),
	}
}

type SubcommandWithNamed struct {
	Float     float32              `arg:"named" short:"f" long:"float"`
	WithFlags *SubcommandWithFlags `arg:"subcommand" name:"withFlagsSub"`
}

type SubcommandWithFlags struct {
	On  bool `arg:"flag" long:"on"`
	Off bool `arg:"flag" long:"off"`
}

type SubcommandWithPositionals struct {
	First  string `arg:"positional" name:"first"`
	Second int    `arg:"positional" name:"second"`
	Third  Char   `arg:"positional" name:"third"`
}

type NestedSubcommandContainer struct {
	NestedUnused *NamedPrimitives `arg:"subcommand" name:"nestedUnusedSub"`
	NestedChild  *ChildCommand    `arg:"subcommand" name:"nestedSubChild"`
}

type ChildCommand struct {
	NestedEmpty      *PositionalPrimitives       `arg:"subcommand" name:"nestedUnusedChildSub"`
	NestedGrandChild *NestedSubcommandGrandchild `arg:"subcommand" name:"nestedSubGrandchild" desc:"The grandchild command"`
}

type NestedSubcommandGrandchild struct {
	GrandchildFlag bool `arg:"flag" long:"grandchildFlag"`
}

type HelpMessages struct {
	ParamA      string        `arg:"named" short:"a" long:"ArgumentA" required:"true" desc:"The first required Argument"`
	ParamB      string        `arg:"named" short:"b" long:"ArgumentB" desc:"The first optional Argument"`
	FlagA       bool          `arg:"flag" long:"flagA" desc:"This is a flag"`
	PositionalA string        `arg:"positional" name:"posA" desc:"This is a positional Argument"`
	Ayudame     *HelpMessages `arg:"subcommand" name:"doSomething" desc:"This subcommand does stuff"`
}
