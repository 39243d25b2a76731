/*
Package flagrule is an embeddable rule-evaluation engine for feature
gates, A/B variants, and percentage rollouts.

# Overview

flagrule decides whether a human-authored boolean expression like

	deviceType == tablet && appVersion >= 2.0

holds true against a set of runtime facts, without a code change or app
release. An expression is tokenized, converted to postfix form with a
shunting-yard pass, and executed on a small stack machine against a
snapshot of facts from a host-supplied provider.

# Expression Syntax

	<expr>       := <comparison>
	              | <expr> '&&' <expr>
	              | <expr> '||' <expr>
	              | '(' <expr> ')'
	<comparison> := <condition> <relop> <literal>
	<relop>      := '==' | '!=' | '<' | '<=' | '>' | '>='

Condition identifiers are case-sensitive:

	appVersion        float
	buildNumber       int
	deviceGeneration  float
	deviceModel       string
	deviceName        string
	deviceType        string
	operatingSystem   string
	systemVersion     string
	percentage        float, backed by the cohort store

Literals are coerced into the condition's domain before comparing.
Boolean literals (true/t/yes/y/1, false/f/no/n/0, case-insensitive) can
be combined directly with && and ||.

Precedence is deliberate and unconventional: all relational operators
share one class above the logical operators, with no ordering among
relational operators themselves and left-to-right grouping within a
class. Deployed expressions depend on this, so it is part of the
contract.

# Fail-Closed Evaluation

Evaluate never returns an error. Malformed syntax, unknown condition
names, absent facts, and failed coercions all resolve to false: a
broken rule reads as "feature off", never as a crash. Hosts that need
strict validation should lint expressions out of band.

	engine.Evaluate("@@@")        // false
	engine.Evaluate("(")          // false
	engine.Evaluate("foo >< bar") // false

# Basic Usage

	provider := flagrule.NewMapProvider()
	provider.SetFloat(flagrule.ConditionAppVersion, 2.5)
	provider.SetString(flagrule.ConditionDeviceType, "tablet")

	engine := flagrule.New(provider)
	defer engine.Close()

	if engine.Evaluate("appVersion >= 2.0 && deviceType == tablet") {
	    // feature on
	}

# Percentage Rollouts

The percentage condition is a stable per-install value in [0,100),
drawn uniformly on first access and persisted, so a rule like
"percentage <= 10" durably buckets ~10% of installs:

	store, err := cohort.NewSQLiteStore(path)
	if err != nil {
	    log.Fatal(err)
	}
	engine := flagrule.New(provider,
	    flagrule.WithCohortSource(cohort.NewSource(store)))

	engine.Evaluate("percentage <= 10") // same answer on every call

# Named Flags

Ship flag definitions as a YAML or JSON file and evaluate by name:

	settings, err := config.FromFile("flags.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	engine, err := flagrule.FromSettings(settings, provider)
	if err != nil {
	    log.Fatal(err)
	}
	engine.EvaluateFlag("new_checkout")

Unknown flag names resolve to false.

# Observability

Logging and metrics are opt-in:

	engine := flagrule.New(provider,
	    flagrule.WithLogger(slog.Default()),
	    flagrule.WithMetrics(observability.NewMetricsRecorder()))

Logs include structured fields: expression, result, duration_ms.
OpenTelemetry metrics: flagrule.evaluations, flagrule.evaluation.latency_ms,
flagrule.flag.evaluations, flagrule.cohort.draws.

# Thread Safety

  - Engine IS safe for concurrent use
  - MapProvider IS safe for concurrent use; each evaluation sees one
    atomic snapshot of its facts
  - cohort.Source and all cohort.Store implementations are safe for
    concurrent use; first access for a key is atomic

# Subpackages

  - cohort: cohort percentage persistence (memory, SQLite, Postgres)
  - config: settings and flag-file loading
  - observability: logging and metrics helpers
*/
package flagrule
