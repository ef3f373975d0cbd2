// Package definition loads declarative model definitions from JSON or YAML
// documents and builds field descriptors from them through a Registry of kind
// builders. A document lists models by name, each with ordered fields:
//
//	models:
//	  user:
//	    fields:
//	      - name: username
//	        type: text
//	        mapping: { index: not_analyzed }
//	      - name: registrationdate
//	        type: timestamp
//	        defaultFunc: now
//
// Unknown keys are rejected so typos surface at load time.
package definition
