// Package document decodes declarative query trees from YAML, JSON and CUE
// files.
//
// All three formats decode to the same ordered value model (see value.go),
// which Build turns into a queryir tree. Object key order is kept from the
// source so that mappings render in the order they were written.
//
// GRAMMAR:
//
//	"text"                      string literal
//	42, 3.5, true               number / bool literal
//	[a, b, ...]                 sequence
//	{atom: name}                bare token
//	{seq: [..]}                 sequence
//	{and: [..]} / {or: [..]}    boolean group
//	{not: x} / {required: x} / {prohibit: x}
//	{field: {name: city, value: x}}   name is an atom; use key: for any node
//	{in: {field: id, values: [..]}}
//	{fuzzy: "text"} / {fuzzy: {term: "text", boost: 0.7}}
//	{range: {from: a, to: b, exclusive: true}}
//	{map: {city: "Portland"}} / {map: [{key: x, value: y}, ..]}
//
// A corpus file holds named cases with expected output:
//
//	cases:
//	  - name: marine_life
//	    query: {field: {name: marine_life, value: [{required: fish}, {prohibit: eels}]}}
//	    expect: "marine_life:(+'fish' -'eels')"
//
// Any other file is a single query.
//
// Strings are NFC-normalized while decoding.
package document
