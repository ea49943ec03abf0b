package anchor

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Idl is the legacy (pre 0.30) Anchor interface description of a program.
type Idl struct {
	Version      string           `json:"version"`
	Name         string           `json:"name"`
	Instructions []IdlInstruction `json:"instructions"`
	Accounts     []IdlTypeDef     `json:"accounts,omitempty"`
	Types        []IdlTypeDef     `json:"types,omitempty"`
}

type IdlInstruction struct {
	Name     string           `json:"name"`
	Accounts []IdlAccountItem `json:"accounts"`
	Args     []IdlField       `json:"args"`
}

// IdlAccountItem is either a single account or a named group of accounts.
type IdlAccountItem struct {
	Name     string           `json:"name"`
	IsMut    bool             `json:"isMut"`
	IsSigner bool             `json:"isSigner"`
	Optional bool             `json:"isOptional,omitempty"`
	Accounts []IdlAccountItem `json:"accounts,omitempty"`
}

type IdlField struct {
	Name string  `json:"name"`
	Type IdlType `json:"type"`
}

type IdlTypeDef struct {
	Name string `json:"name"`
	Type struct {
		Kind   string     `json:"kind"`
		Fields []IdlField `json:"fields"`
	} `json:"type"`
}

// IdlType is a primitive name ("u64", "string", ...) or one of the
// {"vec": T}, {"option": T}, {"array": [T, N]}, {"defined": "Name"} forms.
type IdlType struct {
	Primitive string
	Vec       *IdlType
	Option    *IdlType
	Array     *IdlType
	ArrayLen  int
	Defined   string
}

func (t *IdlType) UnmarshalJSON(data []byte) error {
	var prim string
	if err := json.Unmarshal(data, &prim); err == nil {
		t.Primitive = prim
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "idl type")
	}

	if raw, ok := obj["vec"]; ok {
		t.Vec = new(IdlType)
		return t.Vec.UnmarshalJSON(raw)
	}
	if raw, ok := obj["option"]; ok {
		t.Option = new(IdlType)
		return t.Option.UnmarshalJSON(raw)
	}
	if raw, ok := obj["array"]; ok {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return errors.Errorf("idl array type must be [type, len], got %s", raw)
		}
		t.Array = new(IdlType)
		if err := t.Array.UnmarshalJSON(pair[0]); err != nil {
			return err
		}
		return json.Unmarshal(pair[1], &t.ArrayLen)
	}
	if raw, ok := obj["defined"]; ok {
		return json.Unmarshal(raw, &t.Defined)
	}
	return errors.Errorf("unsupported idl type %s", data)
}

func (t IdlType) MarshalJSON() ([]byte, error) {
	switch {
	case t.Vec != nil:
		return json.Marshal(map[string]any{"vec": t.Vec})
	case t.Option != nil:
		return json.Marshal(map[string]any{"option": t.Option})
	case t.Array != nil:
		return json.Marshal(map[string]any{"array": []any{t.Array, t.ArrayLen}})
	case t.Defined != "":
		return json.Marshal(map[string]any{"defined": t.Defined})
	default:
		return json.Marshal(t.Primitive)
	}
}

func (t IdlType) String() string {
	switch {
	case t.Vec != nil:
		return "vec<" + t.Vec.String() + ">"
	case t.Option != nil:
		return "option<" + t.Option.String() + ">"
	case t.Array != nil:
		return fmt.Sprintf("[%s; %d]", t.Array.String(), t.ArrayLen)
	case t.Defined != "":
		return t.Defined
	default:
		return t.Primitive
	}
}

func ParseIdl(data []byte) (*Idl, error) {
	var idl Idl
	if err := json.Unmarshal(data, &idl); err != nil {
		return nil, errors.Wrap(err, "parse idl")
	}
	if len(idl.Instructions) == 0 {
		return nil, errors.Errorf("idl %q declares no instructions", idl.Name)
	}
	return &idl, nil
}

func (idl *Idl) Instruction(name string) (*IdlInstruction, error) {
	for i := range idl.Instructions {
		if idl.Instructions[i].Name == name {
			return &idl.Instructions[i], nil
		}
	}
	return nil, errors.Errorf("idl %q has no instruction %q", idl.Name, name)
}

// FlatAccounts expands nested account groups into call order.
func (ix *IdlInstruction) FlatAccounts() []IdlAccountItem {
	var out []IdlAccountItem
	var walk func(items []IdlAccountItem)
	walk = func(items []IdlAccountItem) {
		for _, it := range items {
			if len(it.Accounts) > 0 {
				walk(it.Accounts)
				continue
			}
			out = append(out, it)
		}
	}
	walk(ix.Accounts)
	return out
}

// Discriminator is the 8 byte method selector Anchor prefixes to instruction data.
func (ix *IdlInstruction) Discriminator() [8]byte {
	return SighashDiscriminator("global", ix.Name)
}

func SighashDiscriminator(namespace, name string) [8]byte {
	var out [8]byte
	sum := sha256.Sum256([]byte(namespace + ":" + ToSnakeCase(name)))
	copy(out[:], sum[:8])
	return out
}

// ToSnakeCase converts an IDL camelCase identifier to the Rust method name.
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
