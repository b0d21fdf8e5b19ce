// Package style maps kinds of documented entities to the section maps used
// to rewrite their documentation comments.
//
// Two styles are built in. [Default] recognizes numpydoc-style items with
// classifiers split on " : " and "or". [Legacy] requires a " :" after every
// item term. Additional styles are loaded from YAML files with [LoadFile]:
//
//	name: numpy
//	kinds:
//	  function:
//	    Parameters:
//	      handler: items
//	      renderer: argument
//	    Returns:
//	      handler: item-list
//	      item: any
//
// Style files are validated against [Schema] before they are decoded, and
// the resulting section maps are validated before the [Style] is returned.
//
// [Style.RenderAll] renders many comments concurrently. Each comment is
// rendered into its own document, so a failure leaves the other comments
// unaffected.
package style
