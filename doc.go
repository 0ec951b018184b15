// Package cssprefix rewrites style declarations into the vendor-prefixed
// form a specific browser engine honors.
//
// CSS property and value support diverges across rendering engines. Callers
// author style declarations with the canonical spelling ("display": "flex")
// and the package substitutes the engine-specific property key and value
// token ("msFlexbox", "-moz-box") where the canonical one is not honored.
//
// The active vendor prefix is detected once, by scanning the computed style
// names of a reference element for a prefix marker such as "-moz-". After
// that, support is determined empirically: property keys are tested for
// presence on a live style surface, and value spellings are assigned to it
// and read back, since engines silently reject unsupported values by
// resetting the property to the empty string. Both resolutions are memoized
// for the lifetime of the Prefixer.
//
// The style surface is abstracted behind the StyleProbe interface, so the
// package behaves identically against a real style object or the in-memory
// MemProbe. Without an environment, Translate degrades to a pass-through
// mode that performs no probing.
package cssprefix
