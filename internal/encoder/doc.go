// Package encoder shells out to the external WebP and AVIF encoder binaries.
//
// The encoders are opaque collaborators: pixpress never links an image codec.
// The Client interface keeps the conversion pipeline testable with a fake
// that records invocations instead of spawning processes, while CLI is the
// production implementation wrapping cwebp and avifenc via os/exec. Encoder
// stdout/stderr pass straight through, so failures read exactly as the
// encoder reports them.
package encoder
