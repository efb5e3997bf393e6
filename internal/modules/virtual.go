package modules

import (
	"math/big"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/primitives"
)

// VirtualModule returns the built-in module registered under name, if any.
// Virtual modules are constructed fresh per import; they hold no state.
func VirtualModule(name string) (core.Value, bool) {
	switch name {
	case "lib/uuid":
		return uuidModule(), true
	case "lib/yaml":
		return yamlModule(), true
	default:
		return core.Value{}, false
	}
}

func uuidModule() core.Value {
	values := core.Variables{
		"new": primitives.FunctionOf(func(_ core.Value, _ *core.Environment, _ diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			return primitives.TextOf(uuid.New().String()), nil
		}),
		"parse": primitives.FunctionOf(func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			text, rs := argumentText(argument, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			id, err := uuid.Parse(text)
			if err != nil {
				return core.Value{}, diagnostics.ErrorStatef(stack, "Invalid uuid: %s", err)
			}
			return primitives.TextOf(id.String()), nil
		}),
	}
	return primitives.ModuleOf(primitives.Module{Values: values})
}

func yamlModule() core.Value {
	values := core.Variables{
		"decode": primitives.FunctionOf(func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			text, rs := argumentText(argument, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			var data any
			if err := yaml.Unmarshal([]byte(text), &data); err != nil {
				return core.Value{}, diagnostics.ErrorStatef(stack, "YAML parse error: %s", err)
			}
			return valueFromYaml(data), nil
		}),
		"encode": primitives.FunctionOf(func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			evaluated, rs := core.Evaluate(argument, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			data, rs := yamlFromValue(evaluated, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			out, err := yaml.Marshal(data)
			if err != nil {
				return core.Value{}, diagnostics.ErrorStatef(stack, "YAML encode error: %s", err)
			}
			return primitives.TextOf(string(out)), nil
		}),
	}
	return primitives.ModuleOf(primitives.Module{Values: values})
}

// argumentText evaluates argument and renders it via its Text trait.
func argumentText(argument core.Value, env *core.Environment, stack diagnostics.Stack) (string, *diagnostics.ReturnState) {
	evaluated, rs := core.Evaluate(argument, env, stack)
	if rs != nil {
		return "", rs
	}
	text, rs := core.GetTrait[core.TextValue](evaluated, core.TextTraitID, env, stack)
	if rs != nil {
		return "", rs
	}
	return text.Text, nil
}

// valueFromYaml maps decoded YAML onto the primitive kinds: mappings
// become Modules (field access via function application, like any module),
// sequences become Lists, scalars become Number or Text.
func valueFromYaml(data any) core.Value {
	switch v := data.(type) {
	case nil:
		return core.Empty()
	case bool:
		if v {
			return primitives.TextOf("true")
		}
		return primitives.TextOf("false")
	case int:
		return primitives.NumberOf(new(big.Rat).SetInt64(int64(v)))
	case int64:
		return primitives.NumberOf(new(big.Rat).SetInt64(v))
	case float64:
		return primitives.NumberOf(new(big.Rat).SetFloat64(v))
	case string:
		return primitives.TextOf(v)
	case []any:
		items := make([]core.Value, len(v))
		for i, item := range v {
			items[i] = valueFromYaml(item)
		}
		return primitives.ListOf(primitives.List{Items: items})
	case map[string]any:
		values := make(core.Variables, len(v))
		for key, item := range v {
			values[key] = valueFromYaml(item)
		}
		return primitives.ModuleOf(primitives.Module{Values: values})
	default:
		return core.Empty()
	}
}

// yamlFromValue is the inverse mapping, for `encode`: Modules become
// mappings, Lists become sequences, Numbers and Texts become scalars.
func yamlFromValue(v core.Value, env *core.Environment, stack diagnostics.Stack) (any, *diagnostics.ReturnState) {
	if module, ok, rs := core.GetPrimitiveIfPresent[primitives.Module](v, env, stack); rs != nil {
		return nil, rs
	} else if ok {
		out := make(map[string]any, len(module.Values))
		for key, item := range module.Values {
			data, rs := yamlFromValue(item, env, stack)
			if rs != nil {
				return nil, rs
			}
			out[key] = data
		}
		return out, nil
	}

	if list, ok, rs := core.GetPrimitiveIfPresent[primitives.List](v, env, stack); rs != nil {
		return nil, rs
	} else if ok {
		out := make([]any, len(list.Items))
		for i, item := range list.Items {
			data, rs := yamlFromValue(item, env, stack)
			if rs != nil {
				return nil, rs
			}
			out[i] = data
		}
		return out, nil
	}

	if number, ok, rs := core.GetPrimitiveIfPresent[primitives.Number](v, env, stack); rs != nil {
		return nil, rs
	} else if ok {
		if number.Value.IsInt() {
			return number.Value.Num().Int64(), nil
		}
		f, _ := number.Value.Float64()
		return f, nil
	}

	text, present, rs := core.GetTraitIfPresent[core.TextValue](v, core.TextTraitID, env, stack)
	if rs != nil {
		return nil, rs
	}
	if present {
		return text.Text, nil
	}

	return nil, nil
}
