package domain

var (
	MessageNoRecipeWithID    = "No recipe with ID %s could be found."
	MessageNoRecipesByName   = "No recipes could be found with that name."
	MessageNoRecipesYet      = "There are no recipes yet :( feel free to add one though"
	MessageRecipeDeleted     = "The recipe with ID %s and name %s was deleted."
	MessageCouldNotDelete    = " Could not delete."
	MessageRecipeIDNotInDB   = "The recipe you passed in did not have an ID found in the database. Double check that it is correct. Or maybe you meant to POST a recipe not PATCH one."
	MessageRecipeNeedsParts  = "Recipe should have at least one ingredient and step."
	MessageRatingOutOfBounds = "Rating must be between 0 and 10."
)
