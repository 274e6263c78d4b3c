package picol

import (
	"fmt"
	"reflect"
	"strconv"
)

// errorType is reflect.Type of the error interface, used to detect a
// trailing (T, error) return shape.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Register adds a command whose argument and return conversion is
// derived from fn's Go signature, grounded on feather.Interp.Register.
//
// Parameter kinds string/int/int64/bool are converted from the raw
// argument text; a variadic parameter consumes the remaining arguments.
// A single return value is converted back to text; a trailing error
// return fails the command instead, its message becoming the result.
//
//	interp.Register("double", func(x int64) int64 { return x * 2 })
//	interp.Register("divide", func(a, b int64) (int64, error) {
//	    if b == 0 {
//	        return 0, errors.New("division by zero")
//	    }
//	    return a / b, nil
//	})
func (i *Interp) Register(name string, fn any) error {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return fmt.Errorf("Register: expected function, got %T", fn)
	}

	handler := func(ip *Interp, argv []string, _ any) Code {
		args := argv[1:]
		numIn := fnType.NumIn()
		variadic := fnType.IsVariadic()

		if variadic {
			if len(args) < numIn-1 {
				ip.Result = fmt.Sprintf("Wrong number of args for %s", name)
				return ERR
			}
		} else if len(args) != numIn {
			ip.Result = fmt.Sprintf("Wrong number of args for %s", name)
			return ERR
		}

		callArgs := make([]reflect.Value, len(args))
		for j, raw := range args {
			var paramType reflect.Type
			if variadic && j >= numIn-1 {
				paramType = fnType.In(numIn - 1).Elem()
			} else {
				paramType = fnType.In(j)
			}
			v, err := convertArg(raw, paramType)
			if err != nil {
				ip.Result = fmt.Sprintf("argument %d: %v", j+1, err)
				return ERR
			}
			callArgs[j] = v
		}

		return convertResults(ip, fnVal.Call(callArgs), fnType)
	}

	return i.commands.register(name, handler, nil)
}

func convertArg(raw string, t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(raw), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(n).Convert(t), nil
	case reflect.Bool:
		b, err := Value(raw).Bool()
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f).Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("unsupported parameter type: %v", t)
	}
}

func convertResults(i *Interp, results []reflect.Value, fnType reflect.Type) Code {
	if len(results) == 0 {
		i.Result = ""
		return OK
	}

	last := results[len(results)-1]
	if fnType.Out(fnType.NumOut()-1).Implements(errorType) {
		if !last.IsNil() {
			i.Result = last.Interface().(error).Error()
			return ERR
		}
		results = results[:len(results)-1]
	}

	if len(results) == 0 {
		i.Result = ""
		return OK
	}

	i.Result = formatResult(results[0])
	return OK
}

func formatResult(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Bool:
		if v.Bool() {
			return "1"
		}
		return "0"
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
