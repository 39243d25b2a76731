/*
Package config loads flagrule engine settings from YAML or JSON files.

A settings file carries named flag definitions and the cohort store
selection:

	flags:
	  new_checkout: "appVersion >= 2.0 && percentage <= 25"
	  tablet_layout: "deviceType == tablet"
	cohort:
	  store: sqlite
	  path: /var/lib/myapp/cohort.db

Load it and build an engine:

	settings, err := config.FromFile("flags.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	engine, err := flagrule.FromSettings(settings, provider)
*/
package config
