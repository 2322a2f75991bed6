/*
PURPOSE:
  Helpers for assembling the classifier evaluation report: flattening
  nested classification-report maps into single-level key/value rows and
  translating classifier short names into their display names.

REQUIREMENTS:
  User-specified:
  - Flatten "class -> metric -> value" nesting into "class_metric" keys so
    rows drop straight into a results sheet.
  - Keep the canonical classifier display names the rest of the study uses.

  Implementation-discovered:
  - Only one level is flattened; reports never nest deeper, and flattening
    blindly would mangle scalar top-level entries such as "accuracy".

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (models command), result-sheet assembly
  - Depends on: stdlib only

ERROR HANDLING:
  - Unknown model names report ok=false rather than an error; the caller
    decides whether that is fatal.

USAGE:
  flat := report.Flatten(classificationReport)
  name, ok := report.ModelFullName("xgboost")

MAINTENANCE:
  - Keep the name table in sync with the classifiers the experiment runs.
*/

package report

import "fmt"

// modelNames maps the classifier short names used throughout the experiment
// to their display names. The spellings are load-bearing: result sheets are
// joined on them.
var modelNames = map[string]string{
	"lr":       "Logistic Regression",
	"knn":      "K-Nearest Neighbor",
	"nb":       "Naive Bayes",
	"svm":      "SVM",
	"rbfsvm":   "SVM-RBF",
	"gpc":      "Gaussian Process Classifier",
	"mlp":      "Multilayer Perceptron",
	"ridge":    "Ridge Classifier",
	"rf":       "Random Forest",
	"dt":       "Decision Tree Classifier",
	"et":       "Extra Trees Classifier",
	"qda":      "Quadratic Discriminant Analysis",
	"ada":      "Ada Boost Clasifier",
	"gbc":      "Gradient Boosting Classifier",
	"lda":      "Linear Dicriminant Analysis",
	"xgboost":  "Extreme Gradient Boosting",
	"lightgbm": "Light Gradient Boosting Machine",
}

// ModelFullName translates a classifier short name into its display name.
// ok is false for names outside the experiment's model set.
func ModelFullName(short string) (string, bool) {
	name, ok := modelNames[short]
	return name, ok
}

// Flatten folds one level of nesting out of a classification report.
// Nested maps contribute "outer_inner" keys; scalar values copy through.
func Flatten(reportMap map[string]any) map[string]any {
	flat := make(map[string]any, len(reportMap))

	for key, value := range reportMap {
		switch nested := value.(type) {
		case map[string]any:
			for innerKey, innerValue := range nested {
				flat[fmt.Sprintf("%s_%s", key, innerKey)] = innerValue
			}
		case map[string]float64:
			for innerKey, innerValue := range nested {
				flat[fmt.Sprintf("%s_%s", key, innerKey)] = innerValue
			}
		default:
			flat[key] = value
		}
	}

	return flat
}
