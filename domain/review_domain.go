package domain

var (
	MessageNoReviewWithID        = "The review with ID %s could not be found."
	MessageNoReviewsForRecipe    = "There are no reviews for this recipe."
	MessageNoReviewsForUsername  = "No reviews could be found for username %s"
	MessageReviewDeleteNotExist  = "The review you are trying to delete does not exist."
	MessageReviewUpdateNotExist  = "The review you are trying to update. Maybe you meant to create one? If not,please double check the ID you passed in."
	MessageReviewAccessNotExist  = "The review you are trying to access does not exist"
)
