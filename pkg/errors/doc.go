// Package errors provides structured error types for better observability
// and programmatic error handling across gridcraft.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidShape,
//	    "recipe has no ingredients",
//	    map[string]any{
//	        "output": output.ID,
//	        "width":  width,
//	        "height": height,
//	    },
//	)
//
// Callers branch on the code rather than on message text:
//
//	if errors.IsCode(err, errors.ErrCodeInvalidShape) {
//	    // reject the script line
//	}
package errors
