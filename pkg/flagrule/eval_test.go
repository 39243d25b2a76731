package flagrule

import "testing"

// evalString compiles and evaluates an expression against facts.
func evalString(expr string, facts Facts) bool {
	return evalPostfix(ToPostfix(Tokenize(expr)), facts)
}

func TestEvalComparisons(t *testing.T) {
	facts := Facts{
		ConditionAppVersion:       FloatValue(2.5),
		ConditionBuildNumber:      IntValue(150),
		ConditionDeviceGeneration: FloatValue(7),
		ConditionDeviceType:       StringValue("tablet"),
		ConditionDeviceModel:      StringValue("TabPro"),
		ConditionOperatingSystem:  StringValue("android"),
		ConditionSystemVersion:    StringValue("14.1"),
		ConditionPercentage:       FloatValue(7.3),
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"appVersion >= 2.0", true},
		{"appVersion >= 2.5", true},
		{"appVersion > 2.5", false},
		{"appVersion < 3", true},
		{"appVersion == 2.5", true},
		{"appVersion != 2.5", false},
		{"buildNumber < 100", false},
		{"buildNumber >= 150", true},
		{"buildNumber == 150", true},
		{"deviceGeneration > 6.5", true},
		{"deviceType == tablet", true},
		{"deviceType != phone", true},
		{"deviceModel == TabPro", true},
		{"operatingSystem == android", true},
		{"systemVersion == 14.1", true},
		{"percentage <= 10", true},
		{"percentage <= 5", false},
		{"percentage < 7.3", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := evalString(tt.expr, facts); got != tt.want {
				t.Errorf("eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvalLogical(t *testing.T) {
	facts := Facts{
		ConditionAppVersion: FloatValue(2.5),
		ConditionDeviceType: StringValue("phone"),
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"true && true", true},
		{"true && false", false},
		{"false || true", true},
		{"false || false", false},
		// Equal-precedence chains group left to right:
		// (true && false) || true.
		{"true && false || true", true},
		{"true && (false || true)", true},
		{"false || true && false", false},
		{"appVersion >= 2.0 && deviceType == phone", true},
		{"appVersion >= 2.0 && deviceType == tablet", false},
		{"(appVersion >= 2.0) && (deviceType == tablet)", false},
		{"(appVersion >= 2.0) || (deviceType == tablet)", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := evalString(tt.expr, facts); got != tt.want {
				t.Errorf("eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvalBoolLiteralSynonyms(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{"t && yes", true},
		{"Y && 1", true},
		{"TRUE && True", true},
		{"f || no", false},
		{"N || 0", false},
		{"1 || f", true},
		{"t && n", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := evalString(tt.expr, Facts{}); got != tt.want {
				t.Errorf("eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvalFailClosed(t *testing.T) {
	facts := Facts{
		ConditionAppVersion: FloatValue(2.5),
	}

	tests := []struct {
		name string
		expr string
	}{
		{"empty expression", ""},
		{"lone paren", "("},
		{"unrecognized operator", "foo >< bar"},
		{"garbage", "@@@"},
		{"unknown condition", "fooBar == 1"},
		{"absent fact", "deviceType == tablet"},
		{"coercion failure", "appVersion >= banana"},
		{"int coercion failure", "buildNumber == 1.5"},
		{"bare operand", "appVersion"},
		{"operator without operands", "&&"},
		{"dangling operator", "appVersion >= 2.0 &&"},
		{"logical over non-bool operands", "tablet && phone"},
		{"relational over bool literals", "true == true"},
		{"condition on right side only", "2.0 <= appVersion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(tt.expr, facts); got {
				t.Errorf("eval(%q) = true, want fail-closed false", tt.expr)
			}
		})
	}
}

func TestEvalIdempotent(t *testing.T) {
	facts := Facts{
		ConditionAppVersion: FloatValue(2.5),
		ConditionDeviceType: StringValue("tablet"),
	}
	expr := "(appVersion >= 2.0) && (deviceType == tablet)"

	first := evalString(expr, facts)
	for i := 0; i < 100; i++ {
		if got := evalString(expr, facts); got != first {
			t.Fatalf("evaluation %d returned %v, first returned %v", i, got, first)
		}
	}
}

func TestParseBoolLiteral(t *testing.T) {
	truthy := []string{"true", "t", "yes", "y", "1", "TRUE", "Yes", "Y", "T"}
	for _, s := range truthy {
		v, ok := parseBoolLiteral(s)
		if !ok || !v {
			t.Errorf("parseBoolLiteral(%q) = %v, %v; want true, true", s, v, ok)
		}
	}

	falsy := []string{"false", "f", "no", "n", "0", "FALSE", "No", "N", "F"}
	for _, s := range falsy {
		v, ok := parseBoolLiteral(s)
		if !ok || v {
			t.Errorf("parseBoolLiteral(%q) = %v, %v; want false, true", s, v, ok)
		}
	}

	unparsable := []string{"", "2", "truthy", "tablet", "on", "off"}
	for _, s := range unparsable {
		if _, ok := parseBoolLiteral(s); ok {
			t.Errorf("parseBoolLiteral(%q) ok = true, want false", s)
		}
	}
}
