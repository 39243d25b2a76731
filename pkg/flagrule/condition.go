package flagrule

// Condition is a closed set of named runtime facts usable as the left
// operand of a comparison. Every condition has a fixed value domain;
// literals are coerced into that domain before comparing.
type Condition int

const (
	ConditionAppVersion Condition = iota
	ConditionBuildNumber
	ConditionDeviceGeneration
	ConditionDeviceModel
	ConditionDeviceName
	ConditionDeviceType
	ConditionOperatingSystem
	ConditionSystemVersion
	ConditionPercentage
)

// conditionCount is the number of defined conditions; AllConditions and
// the name/domain tables must stay in sync with it.
const conditionCount = int(ConditionPercentage) + 1

// AllConditions lists every condition, in declaration order.
// Snapshot providers iterate this to build a complete fact set.
var AllConditions = [conditionCount]Condition{
	ConditionAppVersion,
	ConditionBuildNumber,
	ConditionDeviceGeneration,
	ConditionDeviceModel,
	ConditionDeviceName,
	ConditionDeviceType,
	ConditionOperatingSystem,
	ConditionSystemVersion,
	ConditionPercentage,
}

// Name returns the identifier used for the condition in expressions.
// Identifiers are case-sensitive.
func (c Condition) Name() string {
	switch c {
	case ConditionAppVersion:
		return "appVersion"
	case ConditionBuildNumber:
		return "buildNumber"
	case ConditionDeviceGeneration:
		return "deviceGeneration"
	case ConditionDeviceModel:
		return "deviceModel"
	case ConditionDeviceName:
		return "deviceName"
	case ConditionDeviceType:
		return "deviceType"
	case ConditionOperatingSystem:
		return "operatingSystem"
	case ConditionSystemVersion:
		return "systemVersion"
	case ConditionPercentage:
		return "percentage"
	}
	return "?"
}

// String implements fmt.Stringer.
func (c Condition) String() string { return c.Name() }

// Domain returns the value domain a literal is coerced into when
// compared against this condition.
func (c Condition) Domain() Domain {
	switch c {
	case ConditionAppVersion, ConditionDeviceGeneration, ConditionPercentage:
		return DomainFloat
	case ConditionBuildNumber:
		return DomainInt
	}
	return DomainString
}

// ParseCondition maps an expression identifier to its Condition.
// This is the only place an "unknown string" can appear; past this
// boundary every switch over Condition is exhaustive.
func ParseCondition(name string) (Condition, bool) {
	switch name {
	case "appVersion":
		return ConditionAppVersion, true
	case "buildNumber":
		return ConditionBuildNumber, true
	case "deviceGeneration":
		return ConditionDeviceGeneration, true
	case "deviceModel":
		return ConditionDeviceModel, true
	case "deviceName":
		return ConditionDeviceName, true
	case "deviceType":
		return ConditionDeviceType, true
	case "operatingSystem":
		return ConditionOperatingSystem, true
	case "systemVersion":
		return ConditionSystemVersion, true
	case "percentage":
		return ConditionPercentage, true
	}
	return 0, false
}
