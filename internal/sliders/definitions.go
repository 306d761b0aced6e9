package sliders

// builtinDefinitions is the static slider schema. The canonical id is the
// key Lightroom writes into the develop-settings blob (process version 2012
// spelling); the friendly name is the dataset column spelling; aliases add
// spellings observed in older process versions. Adding or retuning a slider
// here is the only supported way to change the schema.
var builtinDefinitions = []Definition{
	// White balance
	{ID: "Temperature", FriendlyName: "temperature", Type: Integer, Min: 2000, Max: 50000, Step: 1, Default: 5500},
	{ID: "Tint", FriendlyName: "tint", Type: Integer, Min: -150, Max: 150, Step: 1, Default: 0},

	// Basic tone
	{ID: "Exposure2012", FriendlyName: "exposure", Aliases: []string{"Exposure"}, Type: Continuous, Min: -5, Max: 5, Step: 0.01, Default: 0},
	{ID: "Contrast2012", FriendlyName: "contrast", Aliases: []string{"Contrast"}, Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "Highlights2012", FriendlyName: "highlights", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "Shadows2012", FriendlyName: "shadows", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "Whites2012", FriendlyName: "whites", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "Blacks2012", FriendlyName: "blacks", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},

	// Parametric tone curve
	{ID: "ParametricHighlights", FriendlyName: "curve_highlights", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "ParametricLights", FriendlyName: "curve_lights", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "ParametricDarks", FriendlyName: "curve_darks", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "ParametricShadows", FriendlyName: "curve_shadows", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},

	// Presence
	{ID: "Vibrance", FriendlyName: "vibrance", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "Saturation", FriendlyName: "saturation", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},

	// HSL hue
	{ID: "HueAdjustmentRed", FriendlyName: "hue_adjust_red", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentOrange", FriendlyName: "hue_adjust_orange", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentYellow", FriendlyName: "hue_adjust_yellow", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentGreen", FriendlyName: "hue_adjust_green", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentAqua", FriendlyName: "hue_adjust_aqua", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentBlue", FriendlyName: "hue_adjust_blue", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentPurple", FriendlyName: "hue_adjust_purple", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "HueAdjustmentMagenta", FriendlyName: "hue_adjust_magenta", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},

	// HSL saturation
	{ID: "SaturationAdjustmentRed", FriendlyName: "saturation_adjust_red", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentOrange", FriendlyName: "saturation_adjust_orange", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentYellow", FriendlyName: "saturation_adjust_yellow", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentGreen", FriendlyName: "saturation_adjust_green", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentAqua", FriendlyName: "saturation_adjust_aqua", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentBlue", FriendlyName: "saturation_adjust_blue", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentPurple", FriendlyName: "saturation_adjust_purple", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "SaturationAdjustmentMagenta", FriendlyName: "saturation_adjust_magenta", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},

	// HSL luminance
	{ID: "LuminanceAdjustmentRed", FriendlyName: "luminance_adjust_red", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentOrange", FriendlyName: "luminance_adjust_orange", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentYellow", FriendlyName: "luminance_adjust_yellow", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentGreen", FriendlyName: "luminance_adjust_green", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentAqua", FriendlyName: "luminance_adjust_aqua", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentBlue", FriendlyName: "luminance_adjust_blue", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentPurple", FriendlyName: "luminance_adjust_purple", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
	{ID: "LuminanceAdjustmentMagenta", FriendlyName: "luminance_adjust_magenta", Type: Integer, Min: -100, Max: 100, Step: 1, Default: 0},
}
