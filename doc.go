// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envschema validates environment variables against a
// declarative schema and coerces them to typed values.
//
// A [Schema] maps each variable name to either a bare [Type] tag or
// a [Field] descriptor carrying optionality and a default:
//
//	schema := envschema.Schema{
//	    "PORT":  envschema.Number,
//	    "DEBUG": envschema.Bool,
//	    "HOST": envschema.Field{
//	        Type:     envschema.String,
//	        Optional: true,
//	        Default:  "localhost",
//	    },
//	}
//
// # Collect-all validation
//
// Validation never stops at the first problem. One call resolves
// every schema key and reports every violation together, so a
// deployer fixes all misconfigurations at once:
//
//	cfg, report := envschema.Validate(schema, environ)
//
// A variable set to the empty string counts as unset: it fails the
// required check and lets a default apply, same as an absent one.
//
// # Two postures over one engine
//
// [Load] raises a single [ValidationError] whose message is the
// consolidated report, for use inside an embedding framework.
// [MustLoad] prints the same report and exits non-zero, for
// standalone application startup. Both run the same engine.
//
// # Environment sources
//
// By default the ambient process environment is used. [EnvFile]
// overlays values parsed from a dotenv file on top of it, and
// [WithSources] swaps in any [source.Source] for testing:
//
//	cfg, err := envschema.Load(schema,
//	    envschema.EnvFile(".env"),
//	)
package envschema
