// Package naming decodes filenames into ordered parts and encodes parts back
// into filenames with a positional template.
//
//	parts, _ := naming.Decode("alpha_beta_gamma.pdf", "_") // [alpha beta gamma]
//	name, _ := naming.Encode(parts, "{2}_{0}_{1}.pdf")      // gamma_alpha_beta.pdf
//
// Decoding drops only the final extension; the template is responsible for
// putting one back.
package naming
