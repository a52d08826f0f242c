// SPDX-License-Identifier: MPL-2.0

// Package argdef provides the in-memory model of declared shell-script
// arguments: typed definitions, the sealed definition set with its derived
// indices, and the parser that builds both from the definition-argument
// token stream.
//
// A Definition describes one argument (type, flags, constraints, and the
// type-specific option/mapping or negative-flag data). A Set owns all
// Definitions for one invocation together with the global Settings, and is
// read-only after NewSet returns. The resolution engine (internal/resolve)
// and the help renderer (internal/help) consume the Set; nothing mutates it.
//
// The two failure kinds of the whole engine - DefinitionError and UserError -
// also live here, so every stage classifies errors the same way.
package argdef
